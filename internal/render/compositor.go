package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"posterforge/internal/models"
)

// Холст фиксированный, исходник растягивается без сохранения пропорций
const CanvasSize = 1024

const (
	PositionTop    = "top"
	PositionCenter = "center"
	PositionBottom = "bottom"
)

const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// тень под текстом для читаемости на светлом фоне
var shadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 204}

var shadowOffsets = [][2]int{
	{-2, -2}, {2, -2}, {-2, 2}, {2, 2}, {0, 3},
}

func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования изображения: %w", err)
	}
	return img, nil
}

// Compose рисует исходник на холсте 1024x1024 и, если overlayText не пуст,
// накладывает одну строку текста. Операция синхронная: результат полностью
// отрисован к моменту возврата, экспортировать можно сразу.
func Compose(src image.Image, overlayText string, style models.OverlayStyle) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if overlayText == "" {
		return dst, nil
	}

	if style.FontSize <= 0 {
		return nil, fmt.Errorf("размер шрифта должен быть положительным")
	}

	face, err := newFace(style.FontSize, style.FontWeight)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	fill, err := ParseHexColor(style.TextColor)
	if err != nil {
		return nil, err
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Face: face,
	}

	// строка одна, переносов нет: по горизонтали центр, по вертикали
	// одна из трех фиксированных отметок базовой линии
	width := drawer.MeasureString(overlayText)
	x := (fixed.I(CanvasSize) - width) / 2
	y := baseline(style)

	drawer.Src = image.NewUniform(shadowColor)
	for _, offset := range shadowOffsets {
		drawer.Dot = fixed.Point26_6{X: x + fixed.I(offset[0]), Y: fixed.I(y + offset[1])}
		drawer.DrawString(overlayText)
	}

	drawer.Src = image.NewUniform(fill)
	drawer.Dot = fixed.Point26_6{X: x, Y: fixed.I(y)}
	drawer.DrawString(overlayText)

	return dst, nil
}

// DataURL сериализует холст в PNG data URL
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("ошибка кодирования PNG: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func baseline(style models.OverlayStyle) int {
	switch style.TextPosition {
	case PositionTop:
		return style.FontSize + 40
	case PositionBottom:
		return CanvasSize - 40
	default:
		return CanvasSize / 2
	}
}

func newFace(size int, weight string) (font.Face, error) {
	ttf := goregular.TTF
	if weight == WeightBold {
		ttf = gobold.TTF
	}

	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки шрифта: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания начертания: %w", err)
	}

	return face, nil
}

// ParseHexColor разбирает цвет вида #RRGGBB или #RGB
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("неверный формат цвета: %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("неверный формат цвета: %q", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("неверный формат цвета: %q", s)
	}

	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}, nil
}
