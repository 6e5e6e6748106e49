package utils

import (
	"strings"
	"testing"
)

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{
			name:      "短文本不换行",
			input:     "GAME OVER",
			maxWidth:  1000,
			expectMin: 1,
		},
		{
			name:      "长文本自动换行",
			input:     "press Enter to play again and try to beat your last score",
			maxWidth:  120,
			expectMin: 2,
		},
		{
			name:      "超长单词强制断行",
			input:     strings.Repeat("W", 40),
			maxWidth:  60,
			expectMin: 2,
		},
		{
			name:      "空文本",
			input:     "",
			maxWidth:  100,
			expectMin: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("WrapText() 返回 %d 行，期望至少 %d 行", len(lines), tt.expectMin)
			}
			if tt.input != "" {
				for _, line := range lines {
					if w := MeasureText(line, font); w > tt.maxWidth && len([]rune(line)) > 1 {
						t.Errorf("line %q width %.1f exceeds %.1f", line, w, tt.maxWidth)
					}
				}
				joined := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
				if joined != strings.ReplaceAll(tt.input, " ", "") {
					t.Errorf("wrapped text lost characters: %q", lines)
				}
			}
		})
	}
}

func TestMeasureText(t *testing.T) {
	font, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}

	if w := MeasureText("", font); w != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", w)
	}
	if w := MeasureText("abc", nil); w != 0 {
		t.Errorf("MeasureText with nil face = %v, want 0", w)
	}
	short, long := MeasureText("Score", font), MeasureText("Score: 12345", font)
	if short <= 0 || long <= short {
		t.Errorf("unexpected widths: %v, %v", short, long)
	}
}

func TestNewFace_SharedSource(t *testing.T) {
	a, err := NewFace(12)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFace(24)
	if err != nil {
		t.Fatal(err)
	}
	if a.Source != b.Source {
		t.Error("faces do not share a font source")
	}
	if a.Size != 12 || b.Size != 24 {
		t.Errorf("sizes = %v, %v", a.Size, b.Size)
	}
}
