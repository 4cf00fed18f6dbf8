package profile

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want int
	}{
		{
			name: "empty profile",
			rec:  Record{},
			want: 0,
		},
		{
			name: "identity fields only",
			rec: Record{
				Name:     "Jane Doe",
				Headline: "Backend Engineer",
				Location: "Austin, TX",
			},
			want: 30,
		},
		{
			name: "full identity three skills two experiences",
			rec: Record{
				Name:            "Jane Doe",
				Headline:        "Backend Engineer",
				Location:        "Austin, TX",
				CurrentPosition: Position{Title: "Senior Engineer", Company: "Acme"},
				Skills:          []Skill{{Name: "Go"}, {Name: "SQL"}, {Name: "Redis"}},
				Experience:      []Experience{{Title: "Engineer"}, {Title: "Intern"}},
			},
			want: 76,
		},
		{
			name: "skills capped at 20",
			rec: Record{
				Skills: make([]Skill, 15),
			},
			want: 20,
		},
		{
			name: "experience capped at 20",
			rec: Record{
				Experience: make([]Experience, 9),
			},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.rec); got != tt.want {
				t.Fatalf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	full := Record{
		Name:            "a",
		Headline:        "b",
		Location:        "c",
		CurrentPosition: Position{Title: "d", Company: "e"},
		Skills:          make([]Skill, 50),
		Experience:      make([]Experience, 50),
	}
	if got := Score(full); got != 100 {
		t.Fatalf("Score(full) = %d, want 100", got)
	}
}
