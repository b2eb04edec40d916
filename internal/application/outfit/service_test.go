package outfit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcd-tools/outfitter-go/internal/application/outfit"
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/test/helpers"
)

func TestNewBuildMountsLightestBulkheads(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	assert.Equal(t, "asp", sh.ID())
	assert.Equal(t, 0, sh.BulkheadIndex())
	assert.False(t, sh.BulkheadsSlot().IsEmpty())

	_, err = svc.NewBuild("sidewinder")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ship")
}

func TestEncodeDecodeThroughService(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyRole(sh, outfit.RoleTrader))

	code, err := svc.Encode(sh)
	require.NoError(t, err)

	decoded, err := svc.Decode("asp", code)
	require.NoError(t, err)
	assert.InDelta(t, sh.LadenMass(), decoded.LadenMass(), 1e-9)
	assert.InDelta(t, sh.TotalCost(), decoded.TotalCost(), 1e-9)
}

func TestApplyRoleMultiPurpose(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyRole(sh, outfit.RoleMultiPurpose))

	// A-rated core where available
	pp := sh.Standard()[catalog.StandardPowerPlant].Module()
	require.NotNil(t, pp)
	assert.Equal(t, "A", pp.Rating)

	require.NotNil(t, sh.FindInternalByGroup(catalog.GroupShieldGenerator))
	assert.Greater(t, sh.CargoCapacity(), 0.0)
}

func TestApplyRoleTrader(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyRole(sh, outfit.RoleTrader))

	// Every unrestricted internal slot carries cargo
	assert.Greater(t, sh.CargoCapacity(), 0.0)
	for _, slot := range sh.Internal() {
		if slot.Accepts(catalog.GroupCargoRack) {
			assert.False(t, slot.IsEmpty())
		}
	}

	pp := sh.Standard()[catalog.StandardPowerPlant].Module()
	require.NotNil(t, pp)
	assert.GreaterOrEqual(t, pp.PGen, sh.PowerDeployed())
}

func TestApplyRoleExplorer(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyRole(sh, outfit.RoleExplorer))

	// A-rated FSD for range, a scoop, no cargo racks
	fsd := sh.Standard()[catalog.StandardFrameShiftDrive].Module()
	require.NotNil(t, fsd)
	assert.Equal(t, "A", fsd.Rating)

	require.NotNil(t, sh.FindInternalByGroup(catalog.GroupFuelScoop))
	assert.Equal(t, 0.0, sh.CargoCapacity())
}

func TestApplyRoleUnknown(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	err = svc.ApplyRole(sh, outfit.Role("racer"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestSummarize(t *testing.T) {
	svc := outfit.NewService(helpers.TestCatalog())

	sh, err := svc.NewBuild("asp")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyRole(sh, outfit.RoleMultiPurpose))
	code, err := svc.Encode(sh)
	require.NoError(t, err)

	summary := outfit.Summarize(sh, code)
	assert.Equal(t, "asp", summary.ShipID)
	assert.Equal(t, "Asp Explorer", summary.ShipName)
	assert.Equal(t, code, summary.Code)
	assert.Equal(t, sh.TotalCost(), summary.TotalCost)
	assert.Equal(t, sh.LadenMass(), summary.LadenMass)
	assert.Equal(t, sh.TopSpeed(), summary.TopSpeed)
	assert.Equal(t, sh.MaxJumpCount(), summary.MaxJumpCount)
}
