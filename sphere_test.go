package limn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereVertices(t *testing.T) {
	verts := SphereVertices()

	assert.Len(t, verts, SphereVertexCount)
	assert.Equal(t, 480, SphereVertexCount)

	// Every vertex sits on the unit sphere, so positions double as normals.
	for i, v := range verts {
		assert.InDeltaf(t, 1, v.Len(), 1e-3, "vertex %d radius", i)
	}
}

func TestSphereVerticesCoverBothPoles(t *testing.T) {
	verts := SphereVertices()

	minY, maxY := verts[0].Y(), verts[0].Y()
	for _, v := range verts {
		if v.Y() < minY {
			minY = v.Y()
		}
		if v.Y() > maxY {
			maxY = v.Y()
		}
	}

	assert.InDelta(t, -1, minY, 1e-3)
	assert.InDelta(t, 1, maxY, 1e-3)
}
