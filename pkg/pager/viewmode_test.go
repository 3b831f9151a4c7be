package pager

import "testing"

func TestMode_NextCycles(t *testing.T) {
	t.Parallel()

	order := []Mode{ModeRendered, ModeSource, ModeSideBySide, ModeRendered}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "rendered", want: ModeRendered},
		{input: "source", want: ModeSource},
		{input: "split", want: ModeSideBySide},
		{input: "side-by-side", want: ModeSideBySide},
		{input: "fancy", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
