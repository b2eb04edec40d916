package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/edcd-tools/outfitter-go/internal/adapters/persistence"
	"github.com/edcd-tools/outfitter-go/internal/application/backup"
	"github.com/edcd-tools/outfitter-go/internal/domain/build"
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
	"github.com/edcd-tools/outfitter-go/internal/infrastructure/database"
	"github.com/edcd-tools/outfitter-go/test/helpers"
)

// backupContext carries the state of one backup scenario: the document
// under construction, the stores it is imported into and the outcome
type backupContext struct {
	cat         *catalog.Catalog
	codec       *build.Codec
	builds      *persistence.GormBuildRepository
	comparisons *persistence.GormComparisonRepository
	importer    *backup.Importer
	exporter    *backup.Exporter

	doc    backup.Document
	result *backup.ImportResult
	err    error
}

// InitializeBackupScenario registers the backup feature steps
func InitializeBackupScenario(sc *godog.ScenarioContext) {
	bc := &backupContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*bc = backupContext{}
		return ctx, nil
	})

	sc.Step(`^an empty outfitter store$`, bc.anEmptyOutfitterStore)
	sc.Step(`^the backup contains a valid "([^"]*)" build named "([^"]*)"$`, bc.backupContainsValidBuild)
	sc.Step(`^the backup contains an empty code for the "([^"]*)" build "([^"]*)"$`, bc.backupContainsEmptyCode)
	sc.Step(`^the backup contains a comparison "([^"]*)" referencing:$`, bc.backupContainsComparison)
	sc.Step(`^the backup is imported$`, bc.backupIsImported)
	sc.Step(`^the store is exported and re-imported into a fresh store$`, bc.exportAndReimport)
	sc.Step(`^the import succeeds with (\d+) builds and (\d+) comparisons?$`, bc.importSucceedsWith)
	sc.Step(`^the import fails because the "([^"]*)" build "([^"]*)" data is missing$`, bc.importFailsDataMissing)
	sc.Step(`^the stored "([^"]*)" build "([^"]*)" decodes successfully$`, bc.storedBuildDecodes)
	sc.Step(`^nothing is stored$`, bc.nothingIsStored)
}

func (bc *backupContext) anEmptyOutfitterStore() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	bc.cat = helpers.TestCatalog()
	bc.codec = build.NewCodec(bc.cat)
	bc.builds = persistence.NewGormBuildRepository(db)
	bc.comparisons = persistence.NewGormComparisonRepository(db)
	bc.importer = backup.NewImporter(bc.cat, bc.builds, bc.comparisons)
	bc.exporter = backup.NewExporter(bc.builds, bc.comparisons)
	bc.doc = backup.Document{Builds: map[string]map[string]string{}}
	return nil
}

func (bc *backupContext) backupContainsValidBuild(shipID, name string) error {
	spec := bc.cat.Ship(shipID)
	if spec == nil {
		return fmt.Errorf("unknown ship in scenario: %s", shipID)
	}
	s := ship.New(spec)
	s.UseStandard(bc.cat, "A")
	code, err := bc.codec.FromShip(s)
	if err != nil {
		return err
	}
	bc.addBuild(shipID, name, code)
	return nil
}

func (bc *backupContext) backupContainsEmptyCode(shipID, name string) error {
	bc.addBuild(shipID, name, "")
	return nil
}

func (bc *backupContext) addBuild(shipID, name, code string) {
	if bc.doc.Builds[shipID] == nil {
		bc.doc.Builds[shipID] = map[string]string{}
	}
	bc.doc.Builds[shipID][name] = code
}

func (bc *backupContext) backupContainsComparison(name string, table *godog.Table) error {
	entry := backup.ComparisonEntry{Facets: []int{}}
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		entry.Builds = append(entry.Builds, backup.BuildRef{
			ShipID:    getCellValue(table, row, "shipId"),
			BuildName: getCellValue(table, row, "buildName"),
		})
	}
	if bc.doc.Comparisons == nil {
		bc.doc.Comparisons = map[string]backup.ComparisonEntry{}
	}
	bc.doc.Comparisons[name] = entry
	return nil
}

func (bc *backupContext) backupIsImported() error {
	raw, err := json.Marshal(&bc.doc)
	if err != nil {
		return err
	}
	bc.result, bc.err = bc.importer.Import(context.Background(), bytes.NewReader(raw))
	return nil
}

func (bc *backupContext) exportAndReimport() error {
	if bc.err != nil {
		return fmt.Errorf("previous import failed: %w", bc.err)
	}

	var out bytes.Buffer
	if err := bc.exporter.Export(context.Background(), &out); err != nil {
		return err
	}

	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	bc.builds = persistence.NewGormBuildRepository(db)
	bc.comparisons = persistence.NewGormComparisonRepository(db)
	bc.importer = backup.NewImporter(bc.cat, bc.builds, bc.comparisons)
	bc.result, bc.err = bc.importer.Import(context.Background(), &out)
	return nil
}

func (bc *backupContext) importSucceedsWith(builds, comparisons int) error {
	if bc.err != nil {
		return fmt.Errorf("import failed: %w", bc.err)
	}
	if bc.result.Builds != builds {
		return fmt.Errorf("expected %d builds, imported %d", builds, bc.result.Builds)
	}
	if bc.result.Comparisons != comparisons {
		return fmt.Errorf("expected %d comparisons, imported %d", comparisons, bc.result.Comparisons)
	}
	return nil
}

func (bc *backupContext) importFailsDataMissing(shipID, name string) error {
	if bc.err == nil {
		return fmt.Errorf("expected the import to fail")
	}
	want := fmt.Sprintf("%s build %q data is missing!", shipID, name)
	if bc.err.Error() != want {
		return fmt.Errorf("expected error %q, got %q", want, bc.err.Error())
	}
	return nil
}

func (bc *backupContext) storedBuildDecodes(shipID, name string) error {
	code, err := bc.builds.Find(context.Background(), shipID, name)
	if err != nil {
		return err
	}
	if _, err := bc.codec.ToShip(shipID, code); err != nil {
		return fmt.Errorf("stored code does not decode: %w", err)
	}
	return nil
}

// getCellValue gets a cell value from a table row by column name,
// using the first row as the header to find the column index
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	headerRow := table.Rows[0]
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

func (bc *backupContext) nothingIsStored() error {
	all, err := bc.builds.ListAll(context.Background())
	if err != nil {
		return err
	}
	if len(all) != 0 {
		return fmt.Errorf("expected an empty store, found %d ships", len(all))
	}
	stored, err := bc.comparisons.ListAll(context.Background())
	if err != nil {
		return err
	}
	if len(stored) != 0 {
		return fmt.Errorf("expected no comparisons, found %d", len(stored))
	}
	return nil
}
