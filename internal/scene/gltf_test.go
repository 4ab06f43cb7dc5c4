package scene

import (
	"testing"

	"github.com/qmuntal/gltf"
)

func TestMaterialFromGLTF(t *testing.T) {
	tests := []struct {
		name     string
		material *gltf.Material
		kind     string
	}{
		{"nil material", nil, "lambertian"},
		{
			"gold",
			&gltf.Material{Name: "gold", PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{1, 0.8, 0.2, 1},
				MetallicFactor:  gltf.Float(1),
				RoughnessFactor: gltf.Float(0.3),
			}},
			"metal",
		},
		{
			"plastic",
			&gltf.Material{Name: "plastic", PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{0.2, 0.4, 0.9, 1},
				MetallicFactor:  gltf.Float(0),
			}},
			"lambertian",
		},
		{
			"window",
			&gltf.Material{Name: "window", PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{1, 1, 1, 0.2},
			}},
			"dielectric",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := materialFromGLTF(i, tt.material)
			if got.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, got.Kind)
			}
		})
	}

	gold := materialFromGLTF(0, tests[1].material)
	if gold.Fuzz != 0.3 || gold.Albedo != [3]float64{1, 0.8, 0.2} {
		t.Errorf("Expected roughness as fuzz and base color as albedo, got %+v", gold)
	}
}

func TestFromDocument(t *testing.T) {
	doc := &gltf.Document{
		Materials: []*gltf.Material{
			{Name: "red", PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{1, 0, 0, 1},
				MetallicFactor:  gltf.Float(0),
			}},
		},
		Meshes: []*gltf.Mesh{
			{Name: "ball", Primitives: []*gltf.Primitive{{Material: gltf.Index(0)}}},
			{Name: "plain", Primitives: []*gltf.Primitive{{}}},
		},
		Nodes: []*gltf.Node{
			{Name: "a", Mesh: gltf.Index(0), Translation: [3]float64{1, 2, 3}, Scale: [3]float64{2, 0.5, 1}},
			{Name: "b", Mesh: gltf.Index(1)},
			{Name: "empty"},
		},
	}

	d, err := fromDocument(doc)
	if err != nil {
		t.Fatalf("fromDocument failed: %v", err)
	}
	if len(d.Spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(d.Spheres))
	}
	a := d.Spheres[0]
	if a.Center != [3]float64{1, 2, 3} || a.Radius != 2 || a.Material != "red" {
		t.Errorf("Unexpected first sphere %+v", a)
	}
	b := d.Spheres[1]
	if b.Radius != 1 || b.Material != defaultGLTFMaterial {
		t.Errorf("Unexpected second sphere %+v", b)
	}

	if _, err := d.Build(); err != nil {
		t.Errorf("Converted scene should build: %v", err)
	}
}

func TestFromDocumentWithoutMeshes(t *testing.T) {
	if _, err := fromDocument(&gltf.Document{Nodes: []*gltf.Node{{Name: "camera"}}}); err == nil {
		t.Error("Expected an error for a document with no mesh nodes")
	}
}
