// pkg/entity/rock_test.go
package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

func rockLoader() (*render.StaticLoader, []string) {
	loader := render.NewStaticLoader()
	paths := []string{"rock-large.png", "rock-medium.png", "rock-small.png"}
	sizes := []int{96, 64, 32}
	for i, path := range paths {
		loader.Register(path, &render.MemoryImage{W: sizes[i], H: sizes[i]})
	}
	return loader, paths
}

func TestNewRock_CenteredAtRest(t *testing.T) {
	loader, paths := rockLoader()

	rock, err := NewRock(loader, paths, pos(200, 150), rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("NewRock() failed: %v", err)
	}

	if !rock.Collidable() {
		t.Error("rock is not collidable")
	}
	if c := rock.Bounds().Center(); c.X != 200 || c.Y != 150 {
		t.Errorf("rock center = %v, expected (200, 150)", c)
	}
	if rock.Velocity != vec(0, 0) {
		t.Errorf("rock velocity = %v, expected zero", rock.Velocity)
	}
}

func TestNewRock_VariantChoiceIsSeeded(t *testing.T) {
	loader, paths := rockLoader()

	first := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		rock, err := NewRock(loader, paths, pos(0, 0), rand.New(rand.NewPCG(42, 0)))
		if err != nil {
			t.Fatalf("NewRock() failed: %v", err)
		}
		first = append(first, rock.Variant())
	}
	for _, v := range first[1:] {
		if v != first[0] {
			t.Fatalf("same seed produced different variants: %v", first)
		}
	}
}

func TestNewRock_VariantMatchesImageSize(t *testing.T) {
	loader, paths := rockLoader()
	sizes := []float64{96, 64, 32}

	for i := 0; i < 20; i++ {
		rock, err := NewRock(loader, paths, pos(0, 0), rand.New(rand.NewPCG(uint64(i), 0)))
		if err != nil {
			t.Fatalf("NewRock() failed: %v", err)
		}
		if got := rock.Bounds().W; got != sizes[rock.Variant()] {
			t.Errorf("variant %d has box width %v, expected %v", rock.Variant(), got, sizes[rock.Variant()])
		}
	}
}

func TestRock_InheritsNoOpBehavior(t *testing.T) {
	loader, paths := rockLoader()
	rock, err := NewRock(loader, paths, pos(100, 100), rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("NewRock() failed: %v", err)
	}

	before := rock.Bounds()
	if err := rock.Update(16, nil, nil); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if rock.Bounds() != before {
		t.Errorf("rock moved during update: %v -> %v", before, rock.Bounds())
	}

	// A hit on a rock is ignored.
	other, _ := NewRock(loader, paths, pos(100, 100), rand.New(rand.NewPCG(8, 8)))
	rock.CollidedWith(other)
	if rock.Bounds() != before || rock.Velocity != vec(0, 0) {
		t.Error("rock reacted to a collision")
	}
}

func TestNewRock_Errors(t *testing.T) {
	loader, paths := rockLoader()

	t.Run("nil_loader", func(t *testing.T) {
		if _, err := NewRock(nil, paths, pos(0, 0), nil); err == nil {
			t.Fatal("NewRock() accepted a nil loader")
		}
	})

	t.Run("no_variants", func(t *testing.T) {
		if _, err := NewRock(loader, nil, pos(0, 0), nil); err == nil {
			t.Fatal("NewRock() accepted an empty variant list")
		}
	})
}
