package drawingboard

import "math"

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two affine matrices: result = p * c.
func multiplyAffine(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Translate returns m composed with a translation in m's local space.
func (m Affine) Translate(dx, dy float64) Affine {
	return multiplyAffine(m, Affine{1, 0, 0, 1, dx, dy})
}

// Rotate returns m composed with a rotation in m's local space. Positive
// angles turn clockwise on a y-down canvas.
func (m Affine) Rotate(degrees float64) Affine {
	sin, cos := math.Sincos(degrees * degToRad)
	return multiplyAffine(m, Affine{cos, sin, -sin, cos, 0, 0})
}

// Apply maps a local point through the matrix.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Scale returns the average axis scale factor, used to scale stroke widths.
func (m Affine) Scale() float64 {
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[2], m[3])
	return (sx + sy) / 2
}

// Transformer is the part of a Surface that accumulates a cumulative
// transform. Both calls compose in the current local space.
type Transformer interface {
	Translate(dx, dy float64)
	Rotate(degrees float64)
}

type transformKind uint8

const (
	transformRotate transformKind = iota
	transformTranslateX
	transformTranslateY
)

type transformOp struct {
	kind  transformKind
	value float64
}

// TransformStack records translate/rotate calls so that PopMatrix can return
// the target's cumulative transform to exactly its state at the matching
// PushMatrix.
//
// Outside any Push/Pop pair, calls accumulate into flat totals that
// UndoRotations and UndoTranslations cancel in one step.
type TransformStack struct {
	target Transformer
	frames [][]transformOp

	rotation     float64
	translationX float64
	translationY float64
}

// NewTransformStack returns a stack applying transforms to target.
func NewTransformStack(target Transformer) *TransformStack {
	return &TransformStack{target: target}
}

// Depth returns the number of open frames.
func (s *TransformStack) Depth() int { return len(s.frames) }

// Rotate applies a rotation and records it.
func (s *TransformStack) Rotate(degrees float64) {
	s.target.Rotate(degrees)
	if top := len(s.frames) - 1; top >= 0 {
		s.frames[top] = append(s.frames[top], transformOp{transformRotate, degrees})
		return
	}
	s.rotation += degrees
}

// Translate applies a translation and records it as an X and a Y operation.
func (s *TransformStack) Translate(dx, dy float64) {
	s.target.Translate(dx, dy)
	if top := len(s.frames) - 1; top >= 0 {
		s.frames[top] = append(s.frames[top],
			transformOp{transformTranslateX, dx},
			transformOp{transformTranslateY, dy})
		return
	}
	s.translationX += dx
	s.translationY += dy
}

// TranslateX translates along the local x axis only.
func (s *TransformStack) TranslateX(dx float64) { s.Translate(dx, 0) }

// TranslateY translates along the local y axis only.
func (s *TransformStack) TranslateY(dy float64) { s.Translate(0, dy) }

// PushMatrix opens a new, empty frame.
func (s *TransformStack) PushMatrix() {
	s.frames = append(s.frames, nil)
}

// PopMatrix undoes every operation recorded since the matching PushMatrix,
// in reverse order. The inverse replay goes straight to the target and is
// never recorded. Popping with no open frame panics with an *InvariantError.
func (s *TransformStack) PopMatrix() {
	top := len(s.frames) - 1
	if top < 0 {
		invariant("PopMatrix", "no matching PushMatrix")
	}
	ops := s.frames[top]
	s.frames[top] = nil
	s.frames = s.frames[:top]
	s.replayInverse(ops)
}

func (s *TransformStack) replayInverse(ops []transformOp) {
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		switch op.kind {
		case transformRotate:
			s.target.Rotate(-op.value)
		case transformTranslateX:
			s.target.Translate(-op.value, 0)
		case transformTranslateY:
			s.target.Translate(0, -op.value)
		}
	}
}

// UndoRotations cancels the flat rotation total in one step.
func (s *TransformStack) UndoRotations() {
	if s.rotation != 0 {
		s.target.Rotate(-s.rotation)
	}
	s.rotation = 0
}

// UndoTranslations cancels the flat translation total in one step.
func (s *TransformStack) UndoTranslations() {
	if s.translationX != 0 || s.translationY != 0 {
		s.target.Translate(-s.translationX, -s.translationY)
	}
	s.translationX, s.translationY = 0, 0
}

// reset drops all frames and totals without touching the target. Used when
// the target's transform is reset at the start of a frame.
func (s *TransformStack) reset() {
	s.frames = s.frames[:0]
	s.rotation, s.translationX, s.translationY = 0, 0, 0
}
