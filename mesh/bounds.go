package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/common"
)

func (m *triMesh) CalcBoundingBox() common.Box3 {
	box := common.EmptyBox3()
	for _, v := range m.vertices {
		box = box.ExpandByPoint(v)
	}
	return box
}

func (m *triMesh) CalcBoundingBoxTransformed(transform mgl32.Mat4) common.Box3 {
	box := common.EmptyBox3()
	for _, v := range m.vertices {
		p := transform.Mul4x1(v.Vec4(1)).Vec3()
		box = box.ExpandByPoint(p)
	}
	return box
}

func (m *triMesh) CalcBoundingSphere() (mgl32.Vec3, float32) {
	if len(m.vertices) == 0 {
		return mgl32.Vec3{}, 0
	}
	center := m.CalcBoundingBox().Center()
	var maxSq float32
	for _, v := range m.vertices {
		d := v.Sub(center)
		if sq := d.Dot(d); sq > maxSq {
			maxSq = sq
		}
	}
	return center, math32.Sqrt(maxSq)
}

func (m *triMesh2D) CalcBoundingRect() common.Rect {
	rect := common.EmptyRect()
	for _, v := range m.vertices {
		rect = rect.ExpandByPoint(v)
	}
	return rect
}
