// Package render draws the color bar preview with OpenGL. Geometry comes
// from the bar package; this package owns the shader program and the vertex
// buffer the geometry is uploaded to.
package render

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/colormap/internal/bar"
	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/geom"
)

// Renderer uploads a color table as a framed bar and draws it.
type Renderer struct {
	w, h int

	program     *program
	vao, vbo    uint32
	vertexCount int32
	stats       Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastPrepareTimeMs float64 // time spent in last Prepare() call in milliseconds
	LastDrawTimeUs    float64 // time spent in last Draw() call in microseconds
	Swatches          int
}

// NewRenderer compiles the shaders and allocates the vertex buffer. It must be
// called with a current GL context.
func NewRenderer() (*Renderer, error) {
	p, err := newProgram()
	if err != nil {
		return nil, err
	}
	r := &Renderer{program: p}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(bar.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	return r, nil
}

// Prepare rebuilds the bar geometry for tbl in a w x h viewport and uploads
// it.
func (r *Renderer) Prepare(tbl []colormap.RGB, w, h int) error {
	startTime := time.Now()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid viewport dimensions %dx%d", w, h)
	}
	r.w, r.h = w, h

	vertices, err := bar.Vertices(tbl, bar.Layout(w, h))
	if err != nil {
		return fmt.Errorf("building color bar: %w", err)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	r.vertexCount = int32(len(vertices) / bar.FloatsPerVertex)

	r.stats = Stats{
		LastPrepareTimeMs: float64(time.Since(startTime).Microseconds()) / 1000.0,
		LastDrawTimeUs:    r.stats.LastDrawTimeUs,
		Swatches:          len(tbl),
	}
	return nil
}

// Draw renders the last prepared bar.
func (r *Renderer) Draw() {
	startTime := time.Now()

	gl.UseProgram(r.program.id)
	r.program.setTransform(bar.Matrix4(geom.ScreenToNDC(r.w, r.h)))
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)

	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Delete releases the GL objects.
func (r *Renderer) Delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program.id)
}
