// Bar chart of base composition, written as a png.

package nucstat

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/andrew-torda/nucfile/pkg/common"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	plotW    = 400
	plotH    = 300
	margin   = 40
	barW     = 50
	fontSize = 14
	baseline = plotH - margin // bottom of the bars
	barMax   = plotH - 3*margin
)

// barColours are in the order of common.Bases
var barColours = [common.NBase]color.RGBA{
	{0x2c, 0xa0, 0x2c, 0xff}, // A green
	{0xd6, 0x27, 0x28, 0xff}, // T red
	{0x1f, 0x77, 0xb4, 0xff}, // C blue
	{0x40, 0x40, 0x40, 0xff}, // G grey
}

// barRect is where the bar for base i goes, given its height.
func barRect(i, h int) image.Rectangle {
	slot := (plotW - 2*margin) / common.NBase
	x0 := margin + i*slot + (slot-barW)/2
	return image.Rect(x0, baseline-h, x0+barW, baseline)
}

// barHeight scales so the most common base gets the full height.
func barHeight(st *Stats, i int) int {
	var most int
	for _, n := range st.Counts {
		most = max(most, n)
	}
	if most == 0 {
		return 0
	}
	return st.Counts[i] * barMax / most
}

// drawPlot does the drawing. It is separate from Plot so tests can look
// at the pixels without a file.
func drawPlot(st *Stats) (*image.RGBA, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, plotW, plotH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)

	title := fmt.Sprintf("%s  n = %d", filepath.Base(st.Fname), st.Len)
	if _, err := ctx.DrawString(title, freetype.Pt(margin, margin/2+fontSize/2)); err != nil {
		return nil, err
	}
	for i := 0; i < common.NBase; i++ {
		r := barRect(i, barHeight(st, i))
		draw.Draw(img, r, image.NewUniform(barColours[i]), image.Point{}, draw.Src)
		lbl := string(common.Bases[i])
		if _, err := ctx.DrawString(lbl, freetype.Pt(r.Min.X+barW/2-fontSize/3, baseline+fontSize+4)); err != nil {
			return nil, err
		}
		pct := fmt.Sprintf("%.1f%%", 100*st.Frac(i))
		if _, err := ctx.DrawString(pct, freetype.Pt(r.Min.X, r.Min.Y-4)); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Plot writes a bar chart of the base composition to fname.
func Plot(st *Stats, fname string) (err error) {
	img, err := drawPlot(st)
	if err != nil {
		return err
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("plot file: %w", err)
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = png.Encode(fp, img); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}
