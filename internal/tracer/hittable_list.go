package tracer

// HittableList is a linearly scanned collection of hittables.
type HittableList struct {
	Objects []Hittable
}

func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

func (l *HittableList) Len() int {
	return len(l.Objects)
}

func (l *HittableList) hittable() {}

// Hit returns the closest intersection across all objects.
func (l *HittableList) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	var temp HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(r, Interval{Min: rayT.Min, Max: closestSoFar}, &temp) {
			hitAnything = true
			closestSoFar = temp.T
			*rec = temp
		}
	}
	return hitAnything
}
