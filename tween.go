package orientation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RotationTween animates a rotation from one Quaternion to another over a duration, with the interpolation factor
// shaped by an easing function from the gween/ease package. Easing functions that overshoot (like ease.OutBack)
// extrapolate past the end rotations along the same arc.
type RotationTween struct {
	From, To Quaternion
	tween    *gween.Tween
}

// NewRotationTween creates a new RotationTween. If easing is nil, ease.Linear is used.
func NewRotationTween(from, to Quaternion, duration float32, easing ease.TweenFunc) *RotationTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &RotationTween{
		From:  from,
		To:    to,
		tween: gween.New(0, 1, duration, easing),
	}
}

func (rt *RotationTween) at(t float32) Quaternion {
	q := Quaternion{}
	q.SetSlerp(t, &rt.From, &rt.To)
	q.Normalize()
	return q
}

// Update advances the tween by dt and returns the current rotation, along with whether the tween has finished.
func (rt *RotationTween) Update(dt float32) (Quaternion, bool) {
	t, finished := rt.tween.Update(dt)
	return rt.at(t), finished
}

// Set moves the tween to the time given and returns the rotation there, along with whether the tween has finished.
func (rt *RotationTween) Set(time float32) (Quaternion, bool) {
	t, finished := rt.tween.Set(time)
	return rt.at(t), finished
}

// Reset rewinds the tween to the beginning.
func (rt *RotationTween) Reset() {
	rt.tween.Reset()
}

// TransformTween animates a rigid transform from one Matrix34 to another: the rotation is slerped and the translation
// lerped, both by the same eased factor.
type TransformTween struct {
	From, To Matrix34
	tween    *gween.Tween
}

// NewTransformTween creates a new TransformTween. If easing is nil, ease.Linear is used.
func NewTransformTween(from, to Matrix34, duration float32, easing ease.TweenFunc) *TransformTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &TransformTween{
		From:  from,
		To:    to,
		tween: gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt and returns the current transform, along with whether the tween has finished.
func (tt *TransformTween) Update(dt float32) (Matrix34, bool) {
	t, finished := tt.tween.Update(dt)
	return tt.From.Slerp(tt.To, t), finished
}

// Set moves the tween to the time given and returns the transform there, along with whether the tween has finished.
func (tt *TransformTween) Set(time float32) (Matrix34, bool) {
	t, finished := tt.tween.Set(time)
	return tt.From.Slerp(tt.To, t), finished
}

// Reset rewinds the tween to the beginning.
func (tt *TransformTween) Reset() {
	tt.tween.Reset()
}

// SlerpEased slerps from a to b by t (0 to 1), reshaping t with the easing function given first.
// The result is renormalized.
func SlerpEased(a, b Quaternion, t float32, easing ease.TweenFunc) Quaternion {
	q := Quaternion{}
	q.SetSlerp(easing(t, 0, 1, 1), &a, &b)
	q.Normalize()
	return q
}
