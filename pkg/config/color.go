package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor 解析颜色字符串
//
// 支持的格式:
//   - SVG/CSS 命名颜色（不区分大小写），如 "lightblue"
//   - 十六进制 "#rrggbb" 或 "#rrggbbaa"
func ParseColor(value string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}

	if c, ok := colornames.Map[v]; ok {
		// 命名颜色都是不透明的，RGBA 与 NRGBA 取值相同
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	if !strings.HasPrefix(v, "#") {
		return color.NRGBA{}, fmt.Errorf("unknown color '%s'", value)
	}

	hex := v[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color '%s'", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color '%s': %w", value, err)
	}

	if len(hex) == 6 {
		return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// WithAlpha 返回替换了透明度的颜色，alpha 取值 [0, 1]
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(math.Round(alpha * 255))
	return c
}
