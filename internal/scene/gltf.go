package scene

import (
	"fmt"
	"math"
	"path/filepath"

	"GopherTrace/internal/logger"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

const defaultGLTFMaterial = "gltf_default"

// LoadGLTF reads a glTF file and treats every mesh node as a unit sphere:
// the node translation is the center and its largest scale component the radius.
func LoadGLTF(path string) (*Description, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}
	d, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Name = filepath.Base(path)
	logger.Log.Info("Loaded glTF scene",
		zap.String("path", path),
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("spheres", len(d.Spheres)))
	return d, nil
}

func fromDocument(doc *gltf.Document) (*Description, error) {
	d := &Description{
		Camera: CameraDesc{Position: [3]float64{0, 0, 5}, LookAt: &[3]float64{0, 0, 0}},
	}

	names := make([]string, len(doc.Materials))
	for i, m := range doc.Materials {
		md := materialFromGLTF(i, m)
		names[i] = md.Name
		d.Materials = append(d.Materials, md)
	}
	d.Materials = append(d.Materials, MaterialDesc{
		Name:   defaultGLTFMaterial,
		Kind:   "lambertian",
		Albedo: [3]float64{0.5, 0.5, 0.5},
	})

	for _, node := range doc.Nodes {
		if node == nil || node.Mesh == nil || *node.Mesh >= len(doc.Meshes) {
			continue
		}
		material := defaultGLTFMaterial
		for _, prim := range doc.Meshes[*node.Mesh].Primitives {
			if prim != nil && prim.Material != nil && *prim.Material < len(names) {
				material = names[*prim.Material]
				break
			}
		}
		d.Spheres = append(d.Spheres, SphereDesc{
			Center:   node.Translation,
			Radius:   nodeRadius(node.Scale),
			Material: material,
		})
	}

	if len(d.Spheres) == 0 {
		return nil, fmt.Errorf("no mesh nodes to convert")
	}
	return d, nil
}

// nodeRadius treats an unset (zero) scale as 1.
func nodeRadius(scale [3]float64) float64 {
	r := math.Max(math.Abs(scale[0]), math.Max(math.Abs(scale[1]), math.Abs(scale[2])))
	if r == 0 {
		return 1
	}
	return r
}

// materialFromGLTF maps a metallic-roughness material onto the three tracer
// materials: metallic surfaces become metal, translucent ones glass.
func materialFromGLTF(index int, m *gltf.Material) MaterialDesc {
	name := fmt.Sprintf("gltf_%d", index)
	if m == nil {
		return MaterialDesc{Name: name, Kind: "lambertian", Albedo: [3]float64{0.5, 0.5, 0.5}}
	}
	if m.Name != "" {
		name = m.Name
	}

	base := [4]float64{1, 1, 1, 1}
	metallic, roughness := 1.0, 1.0
	if pbr := m.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorFactor != nil {
			base = *pbr.BaseColorFactor
		}
		if pbr.MetallicFactor != nil {
			metallic = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			roughness = *pbr.RoughnessFactor
		}
	}
	albedo := [3]float64{base[0], base[1], base[2]}

	switch {
	case base[3] < 1:
		return MaterialDesc{Name: name, Kind: "dielectric", RefractionIndex: 1.5}
	case metallic >= 0.5:
		return MaterialDesc{Name: name, Kind: "metal", Albedo: albedo, Fuzz: roughness}
	default:
		return MaterialDesc{Name: name, Kind: "lambertian", Albedo: albedo}
	}
}
