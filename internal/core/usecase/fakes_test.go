package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
	"github.com/TomMcLan/luggage-packing-app/internal/core/ports"
)

type detectorFake struct {
	detection *ports.VisionDetection
	err       error
	calls     int
}

func (f *detectorFake) DetectItems(context.Context, []byte, string) (*ports.VisionDetection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.detection, nil
}

type imageStoreFake struct {
	saveErr error
	saved   int
	deleted []string
}

func (f *imageStoreFake) Save(_ context.Context, image []byte, _ string) (*ports.StoredImage, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved++
	id := fmt.Sprintf("img-%d", f.saved)
	return &ports.StoredImage{ID: id, URL: "http://localhost/uploads/" + id}, nil
}

func (f *imageStoreFake) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type sessionsFake struct {
	mu       sync.Mutex
	saveErr  error
	sessions []domain.Session
}

func (f *sessionsFake) Save(_ context.Context, session domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *sessionsFake) Recent(_ context.Context, limit int) ([]domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit <= 0 || limit > len(f.sessions) {
		limit = len(f.sessions)
	}
	out := make([]domain.Session, limit)
	copy(out, f.sessions[len(f.sessions)-limit:])
	return out, nil
}
