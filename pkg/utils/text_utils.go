package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
)

// NewFace 返回指定字号的 Go Regular 字体
//
// 字体源只解析一次，之后的调用共享同一个 GoTextFaceSource。
func NewFace(size float64) (*text.GoTextFace, error) {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if faceSourceErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", faceSourceErr)
	}
	return &text.GoTextFace{
		Source: faceSource,
		Size:   size,
	}, nil
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if MeasureText(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if MeasureText(candidate, font) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		// 单词本身超宽，按字符强制断行
		for MeasureText(word, font) > maxWidth {
			cut := breakWord(word, font, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// breakWord 返回 word 中不超过 maxWidth 的最长前缀的字节长度，至少一个字符
func breakWord(word string, font text.Face, maxWidth float64) int {
	_, first := utf8.DecodeRuneInString(word)
	cut := first
	for i, r := range word {
		end := i + utf8.RuneLen(r)
		if MeasureText(word[:end], font) > maxWidth {
			break
		}
		cut = end
	}
	return cut
}

// MeasureText 测量单行文本宽度
func MeasureText(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// DrawCenteredText 以 (centerX, y) 为水平中心绘制文本
func DrawCenteredText(dst *ebiten.Image, textStr string, font text.Face, centerX, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, textStr, font, op)
}

// DrawText 以 (x, y) 为左上角绘制文本
func DrawText(dst *ebiten.Image, textStr string, font text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, textStr, font, op)
}
