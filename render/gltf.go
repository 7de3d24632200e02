package render

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/soypat/sculpt"
)

// SaveGLB exports the terrain as a glTF binary (GLB) asset with positions,
// smooth shading normals and the triangle index buffer.
func SaveGLB(path string, t *sculpt.Terrain) error {
	verts := t.Vertices()
	norms := t.Normals()

	positions := make([][3]float32, len(verts))
	normals := make([][3]float32, len(norms))
	for i, v := range verts {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		n := norms[i]
		normals[i] = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
	}
	indices := make([]uint32, len(t.Indices()))
	copy(indices, t.Indices())

	doc := gltf.NewDocument()
	doc.Asset.Generator = "sculpt terrain"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{0.45, 0.55, 0.35, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)

	mesh := &gltf.Mesh{Name: "Terrain", Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{mesh}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return gltf.SaveBinary(doc, path)
}
