package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turtacn/periodic-combinator/internal/application/explorer"
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/catalog"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
)

// DefaultGeometry is the table geometry of the default 1280x720 window.
var DefaultGeometry = layout.Geometry{CellSize: 53, Padding: 4, OriginX: 80}

// Pointer positions inside table cells for DefaultGeometry.
var (
	PosH    = layout.Point{X: 90, Y: 10}
	PosO    = layout.Point{X: 945, Y: 67}
	PosNa   = layout.Point{X: 90, Y: 124}
	PosCl   = layout.Point{X: 1002, Y: 124}
	PosVoid = layout.Point{X: 147, Y: 10}
)

// EmbeddedCatalog loads the built-in catalog or fails the test.
func EmbeddedCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(catalog.Embedded())
	require.NoError(t, err)
	return cat
}

// NewExplorer returns an explorer over the embedded catalog laid out with
// DefaultGeometry.  logger may be nil.
func NewExplorer(t testing.TB, logger logging.Logger) explorer.Service {
	t.Helper()
	return explorer.NewService(EmbeddedCatalog(t), DefaultGeometry, nil, logger)
}
