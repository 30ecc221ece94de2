package cli

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// documentFile is the on-disk form of a document pair. JSON files parse too.
type documentFile struct {
	Reference documentEntry `yaml:"reference"`
	Candidate documentEntry `yaml:"candidate"`
}

type documentEntry struct {
	Temperature  string `yaml:"temperature"`
	PONumber     string `yaml:"po_number"`
	SealNumber   string `yaml:"seal_number"`
	Location     string `yaml:"location"`
	DeliveryTime string `yaml:"delivery_time"`
}

func (e documentEntry) record() domain.DocumentRecord {
	return domain.DocumentRecord{
		Temperature:  e.Temperature,
		PONumber:     e.PONumber,
		SealNumber:   e.SealNumber,
		Location:     e.Location,
		DeliveryTime: e.DeliveryTime,
	}
}

// Flag suffixes per document field: --ref-temp, --bol-temp and so on.
var fieldFlags = []struct {
	field  domain.DocumentField
	suffix string
	label  string
}{
	{domain.FieldTemperature, "temp", "temperature"},
	{domain.FieldPONumber, "po", "PO/PU number"},
	{domain.FieldSealNumber, "seal", "seal number"},
	{domain.FieldLocation, "location", "delivery location"},
	{domain.FieldDeliveryTime, "time", "delivery time"},
}

func newCompareCmd(app *App) *cobra.Command {
	var (
		file    string
		mistake bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Check a BOL against its Rate Confirmation",
		Long: `Compare the five checked fields of a Bill of Lading (BOL) with the Rate
Confirmation (reference). Both sides start from the sample document, then
--file and the --ref-*/--bol-* flags override them. Matching ignores case
and extra whitespace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var form services.DocumentForm
			form.LoadSample(app.Catalog.SampleDocument())

			if file != "" {
				pair, err := readDocumentFile(file)
				if err != nil {
					return err
				}
				form.Reference = pair.Reference.record()
				form.Candidate = pair.Candidate.record()
			}

			for _, ff := range fieldFlags {
				if name := "ref-" + ff.suffix; cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					form.Reference = form.Reference.With(ff.field, v)
				}
				if name := "bol-" + ff.suffix; cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					form.Candidate = form.Candidate.With(ff.field, v)
				}
			}

			out := cmd.OutOrStdout()
			if mistake {
				field := form.IntroduceMistake(app.Random)
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Introduced a mistake in %s", field)))
			}

			res := form.Derive()
			fmt.Fprintf(out, "Score: %d/%d\n", res.Score, res.MaxScore)
			for _, issue := range res.Report {
				fmt.Fprintln(out, dangerStyle.Render("  • "+issue))
			}
			fmt.Fprintln(out, renderToast(res.Notification))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with reference and candidate documents")
	cmd.Flags().BoolVar(&mistake, "mistake", false, "replace the BOL with the reference plus one random mistake")
	for _, ff := range fieldFlags {
		cmd.Flags().String("ref-"+ff.suffix, "", "Rate Con "+ff.label)
		cmd.Flags().String("bol-"+ff.suffix, "", "BOL "+ff.label)
	}
	return cmd
}

func readDocumentFile(path string) (documentFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return documentFile{}, fmt.Errorf("compare: read %s: %w", path, err)
	}

	var pair documentFile
	if err := yaml.Unmarshal(b, &pair); err != nil {
		return documentFile{}, fmt.Errorf("compare: parse %s: %w", path, err)
	}
	return pair, nil
}
