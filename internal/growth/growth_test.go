package growth

import (
	"testing"

	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/city"
)

func TestFieldDeterministicAndBounded(t *testing.T) {
	a := NewField(7)
	b := NewField(7)
	other := NewField(8)

	differs := false
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			va := a.At(x, y)
			if va < floor || va > 1 {
				t.Fatalf("At(%d,%d) = %f outside [%f, 1]", x, y, va, floor)
			}
			if va != b.At(x, y) {
				t.Fatalf("same seed disagrees at (%d,%d)", x, y)
			}
			if va != other.At(x, y) {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("different seeds produced identical fields")
	}
}

func TestServiceSetsDesirabilityOnResidentialOnly(t *testing.T) {
	c := city.New(4, 10000, "growthville", city.Deps{})
	c.PlaceBuilding(1, 1, building.TypeResidential)
	c.PlaceBuilding(2, 2, building.TypeRoad)
	c.Register(NewService(3))

	c.Simulate(1)
	home := c.Parcel(1, 1).Building
	if home.Desirability < floor {
		t.Errorf("residential desirability = %f, below floor", home.Desirability)
	}
	if d := c.Parcel(2, 2).Building.Desirability; d != 0 {
		t.Errorf("road desirability = %f, want untouched 0", d)
	}
}

func TestRoadAdjacencyBonus(t *testing.T) {
	c := city.New(6, 100000, "bonusville", city.Deps{})
	c.PlaceBuilding(0, 0, building.TypeResidential) // no road nearby
	c.PlaceBuilding(4, 4, building.TypeResidential)
	c.PlaceBuilding(4, 5, building.TypeRoad)

	svc := NewService(11)
	c.Register(svc)
	c.Simulate(1)

	base := svc.field.At(4, 4)
	got := c.Parcel(4, 4).Building.Desirability
	wantBonus := base + roadBonus
	if wantBonus > 1 {
		wantBonus = 1
	}
	if got != wantBonus {
		t.Errorf("desirability with road = %f, want %f", got, wantBonus)
	}
	if d := c.Parcel(0, 0).Building.Desirability; d != svc.field.At(0, 0) {
		t.Errorf("desirability without road = %f, want base %f", d, svc.field.At(0, 0))
	}
}

func TestResidentsGrowUnderService(t *testing.T) {
	c := city.New(4, 10000, "tickville", city.Deps{})
	c.PlaceBuilding(1, 1, building.TypeResidential)
	c.Register(NewService(5))

	c.Simulate(30)
	if got := c.Population(); got == 0 {
		t.Error("no residents moved in after 30 ticks")
	}
}
