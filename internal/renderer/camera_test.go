package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// vecNear compares componentwise with an absolute tolerance, so expected
// zeros tolerate rounding such as cos(-90deg).
func vecNear(a, b mgl32.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func newTestCamera() *Camera {
	return NewCamera(mgl32.Vec3{3, 3, 15}, -90, 0, 800.0/600.0)
}

func TestNewCamera(t *testing.T) {
	cam := newTestCamera()

	if cam.Position != (mgl32.Vec3{3, 3, 15}) {
		t.Errorf("Expected position (3,3,15), got %v", cam.Position)
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}

	if !vecNear(cam.Front, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Default yaw should look down -Z, got %v", cam.Front)
	}

	if !vecNear(cam.Right, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Right vector should be +X, got %v", cam.Right)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := newTestCamera()

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	eye := view.Mul4x1(cam.Position.Vec4(1)).Vec3()
	if !vecNear(eye, mgl32.Vec3{}, 1e-4) {
		t.Errorf("Camera position should map to the origin in view space, got %v", eye)
	}
}

func TestCameraSkyboxViewHasNoTranslation(t *testing.T) {
	cam := newTestCamera()
	cam.ProcessMouseMovement(120, 40, true)

	view := cam.GetSkyboxViewMatrix()

	if view.At(0, 3) != 0 || view.At(1, 3) != 0 || view.At(2, 3) != 0 {
		t.Errorf("Skybox view should not translate, got column %v", view.Col(3))
	}

	full := cam.GetViewMatrix()
	if view.Mat3() != full.Mat3() {
		t.Error("Skybox view should keep the camera rotation")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := newTestCamera()

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraProcessKeyboard(t *testing.T) {
	cam := newTestCamera()
	start := cam.Position

	cam.ProcessKeyboard(Forward, 1.0)
	want := start.Add(cam.Front.Mul(cam.Speed))
	if !vecNear(cam.Position, want, 1e-5) {
		t.Errorf("Forward: expected %v, got %v", want, cam.Position)
	}

	cam.ProcessKeyboard(Backward, 1.0)
	if !vecNear(cam.Position, start, 1e-5) {
		t.Errorf("Backward should undo Forward, got %v", cam.Position)
	}

	cam.ProcessKeyboard(Right, 0.5)
	want = start.Add(cam.Right.Mul(cam.Speed * 0.5))
	if !vecNear(cam.Position, want, 1e-5) {
		t.Errorf("Right: expected %v, got %v", want, cam.Position)
	}

	cam.ProcessKeyboard(Left, 0.5)
	if !vecNear(cam.Position, start, 1e-5) {
		t.Errorf("Left should undo Right, got %v", cam.Position)
	}
}

func TestCameraPitchIsClamped(t *testing.T) {
	cam := newTestCamera()

	cam.ProcessMouseMovement(0, 10000, true)

	if cam.Pitch != 89 {
		t.Errorf("Pitch should clamp to 89, got %f", cam.Pitch)
	}

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
}

func TestCameraInvertMouse(t *testing.T) {
	cam := newTestCamera()
	cam.InvertMouse = true

	cam.ProcessMouseMovement(0, 10, true)

	if cam.Pitch >= 0 {
		t.Errorf("Inverted mouse should pitch down, got %f", cam.Pitch)
	}
}

func TestCameraProcessMouseScroll(t *testing.T) {
	cam := newTestCamera()
	before := cam.GetProjectionMatrix()

	cam.ProcessMouseScroll(5)
	if cam.Fov != 40 {
		t.Errorf("Expected fov 40, got %f", cam.Fov)
	}
	if cam.GetProjectionMatrix() == before {
		t.Error("Projection should follow the field of view")
	}

	cam.ProcessMouseScroll(100)
	if cam.Fov != 1 {
		t.Errorf("Fov should clamp to 1, got %f", cam.Fov)
	}

	cam.ProcessMouseScroll(-100)
	if cam.Fov != 45 {
		t.Errorf("Fov should clamp to 45, got %f", cam.Fov)
	}
}
