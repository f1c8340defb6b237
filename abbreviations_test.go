package main

import "testing"

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single shorthand",
			text: "DM2 poorly controlled",
			want: "Type 2 diabetes mellitus poorly controlled",
		},
		{
			name: "multiple shorthands in one note",
			text: "Pt with CHF and HTN, also AFib",
			want: "Pt with Congestive heart failure and Hypertension, also Atrial fibrillation",
		},
		{
			name: "repeated shorthand",
			text: "CKD noted; CKD stage unchanged",
			want: "Chronic kidney disease noted; Chronic kidney disease stage unchanged",
		},
		{
			name: "lowercase prose left alone",
			text: "dm2 and htn mentioned in passing",
			want: "dm2 and htn mentioned in passing",
		},
		{
			name: "no expansion inside longer tokens",
			text: "XCHF CHFX SCHF",
			want: "XCHF CHFX SCHF",
		},
		{
			name: "no known shorthand",
			text: "patient doing well",
			want: "patient doing well",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandAbbreviations(tt.text); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
