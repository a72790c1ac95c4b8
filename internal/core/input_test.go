package core

import "testing"

func TestInputFrameEmpty(t *testing.T) {
	tests := []struct {
		name     string
		frame    func() InputFrame
		expected bool
	}{
		{"new", NewInputFrame, true},
		{"zero value", func() InputFrame { return InputFrame{} }, true},
		{"one action", func() InputFrame {
			f := NewInputFrame()
			f.Set(ActionUp)
			return f
		}, false},
		{"click", func() InputFrame {
			var f InputFrame
			f.SetClick(3, 4)
			return f
		}, false},
		{"cleared", func() InputFrame {
			f := NewInputFrame()
			f.SetClick(3, 4)
			f.Clear()
			return f
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.frame().Empty(); got != tc.expected {
				t.Errorf("Empty() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
