package dates

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"slash padded", "15/03/2024", "15-03-2024"},
		{"slash unpadded", "15/3/2024", "15-03-2024"},
		{"slash single digit day", "5/1/2024", "05-01-2024"},
		{"already canonical", "15-03-2024", "15-03-2024"},
		{"iso date", "2024-03-15", "15-03-2024"},
		{"iso timestamp", "2024-03-15 10:30:00", "15-03-2024"},
		{"iso unpadded", "2024-3-5", "05-03-2024"},
		{"slash missing part", "15/2024", ""},
		{"slash empty part", "15//2024", ""},
		{"iso missing part", "2024-03", ""},
		{"garbage", "not a date", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"15/03/2024",
		"15/3/2024",
		"15-03-2024",
		"2024-03-15",
		"2024-03-15 10:30:00",
		"",
		"garbage",
	}

	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize(Normalize(%q)) = %q, want %q", input, twice, once)
		}
	}
}
