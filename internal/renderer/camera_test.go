package renderer

import "testing"

func TestNewOrbitCameraDefaults(t *testing.T) {
	cam := NewOrbitCamera(800, 600)
	if cam.Distance < MinOrbitDistance || cam.Distance > MaxOrbitDistance {
		t.Errorf("default distance %v outside orbit bounds", cam.Distance)
	}
	if cam.PolarDeg < MinPolarDeg || cam.PolarDeg > MaxPolarDeg {
		t.Errorf("default polar angle %v outside bounds", cam.PolarDeg)
	}
}

func TestDollyClampsToBounds(t *testing.T) {
	cam := NewOrbitCamera(800, 600)
	cam.Dolly(100)
	if cam.Distance != MinOrbitDistance {
		t.Errorf("dolly in: distance = %v, want %v", cam.Distance, MinOrbitDistance)
	}
	cam.Dolly(-100)
	if cam.Distance != MaxOrbitDistance {
		t.Errorf("dolly out: distance = %v, want %v", cam.Distance, MaxOrbitDistance)
	}
}

func TestDragClampsPolarAngle(t *testing.T) {
	cam := NewOrbitCamera(800, 600)
	cam.ProcessMouseMovement(0, -10000)
	if cam.PolarDeg != MinPolarDeg {
		t.Errorf("polar = %v, want clamped to %v", cam.PolarDeg, MinPolarDeg)
	}
	cam.ProcessMouseMovement(0, 10000)
	if cam.PolarDeg != MaxPolarDeg {
		t.Errorf("polar = %v, want clamped to %v", cam.PolarDeg, MaxPolarDeg)
	}
}

func TestAutoRotatePausesDuringDrag(t *testing.T) {
	cam := NewOrbitCamera(800, 600)
	start := cam.AzimuthDeg
	cam.Update(1.0)
	if cam.AzimuthDeg == start {
		t.Fatal("camera should auto-rotate when idle")
	}

	cam.BeginDrag()
	paused := cam.AzimuthDeg
	cam.Update(1.0)
	if cam.AzimuthDeg != paused {
		t.Error("auto-rotation should pause while dragging")
	}

	cam.EndDrag()
	cam.Update(1.0)
	if cam.AzimuthDeg == paused {
		t.Error("auto-rotation should resume after the drag ends")
	}
}

func TestPositionStaysOnOrbitSphere(t *testing.T) {
	cam := NewOrbitCamera(800, 600)
	cam.AzimuthDeg = 123
	cam.PolarDeg = 45
	got := cam.Position().Sub(cam.Target).Len()
	if diff := got - cam.Distance; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("orbit radius = %v, want %v", got, cam.Distance)
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	cam := NewOrbitCamera(800, 600)
	view := cam.GetViewMatrix()
	// The target must land on the view axis: x and y go to ~0 in view space.
	p := view.Mul4x1(cam.Target.Vec4(1))
	if p.X() > 1e-4 || p.X() < -1e-4 || p.Y() > 1e-4 || p.Y() < -1e-4 {
		t.Errorf("target off the view axis: %v", p)
	}
}
