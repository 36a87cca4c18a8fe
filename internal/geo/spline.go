package geo

import "github.com/UnknownOlympus/compass/internal/models"

// DefaultSharpness controls how far spline control points are pulled towards segment centers.
const DefaultSharpness = 0.85

const half = 0.5

type vec struct{ x, y float64 }

func (v vec) add(o vec) vec { return vec{v.x + o.x, v.y + o.y} }

func (v vec) sub(o vec) vec { return vec{v.x - o.x, v.y - o.y} }

func (v vec) scale(k float64) vec { return vec{v.x * k, v.y * k} }

func lerp(a, b vec, t float64) vec { return a.scale(1 - t).add(b.scale(t)) }

func fromPoint(p models.GeoPoint) vec { return vec{x: p.Longitude, y: p.Latitude} }

// BezierSpline fits a smooth curve through every point of pts and samples it at n evenly spaced
// parameter values. Consecutive points are joined by cubic Bézier segments whose control points
// are derived from neighbouring segment centers, scaled by sharpness (0..1).
//
// The first and last sampled points are exactly the first and last input points.
// With fewer than two input points, or n < 2, the input is returned unchanged.
func BezierSpline(pts []models.GeoPoint, n int, sharpness float64) models.RoutePath {
	if len(pts) < 2 || n < 2 {
		out := make(models.RoutePath, len(pts))
		copy(out, pts)
		return out
	}

	points := make([]vec, len(pts))
	for i, p := range pts {
		points[i] = fromPoint(p)
	}

	centers := make([]vec, len(points)-1)
	for i := range centers {
		centers[i] = lerp(points[i], points[i+1], half)
	}

	// controls[i] holds the incoming and outgoing control points of points[i].
	controls := make([][2]vec, len(points))
	controls[0] = [2]vec{points[0], points[0]}
	controls[len(points)-1] = [2]vec{points[len(points)-1], points[len(points)-1]}
	for i := 1; i < len(points)-1; i++ {
		shift := points[i].sub(lerp(centers[i-1], centers[i], half))
		controls[i] = [2]vec{
			lerp(points[i], centers[i-1].add(shift), sharpness),
			lerp(points[i], centers[i].add(shift), sharpness),
		}
	}

	segments := len(points) - 1
	out := make(models.RoutePath, 0, n)
	for j := range n {
		u := float64(j) / float64(n-1) * float64(segments)
		seg := int(u)
		if seg >= segments {
			seg = segments - 1
		}
		t := u - float64(seg)

		p := cubic(points[seg], controls[seg][1], controls[seg+1][0], points[seg+1], t)
		out = append(out, models.FromLonLat(p.x, p.y))
	}

	// Pin endpoints to the exact inputs.
	out[0] = pts[0]
	out[len(out)-1] = pts[len(pts)-1]

	return out
}

func cubic(p0, p1, p2, p3 vec, t float64) vec {
	mt := 1 - t
	a := mt * mt * mt
	const k = 3
	b := k * mt * mt * t
	c := k * mt * t * t
	d := t * t * t

	return vec{
		x: a*p0.x + b*p1.x + c*p2.x + d*p3.x,
		y: a*p0.y + b*p1.y + c*p2.y + d*p3.y,
	}
}
