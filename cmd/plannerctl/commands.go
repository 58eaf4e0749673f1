package main

import (
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	file string
	now  func() time.Time
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	root := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Indicadores do planejamento de receita a partir de um arquivo de dados",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "arquivo JSON com o dataset (padrão: dados de demonstração)")

	root.AddCommand(
		newSummaryCommand(opts),
		newForecastCommand(opts),
		newContractValueCommand(),
	)

	return root
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Mostra o painel principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := loadDataset(opts.file)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), insighting.BuildDashboard(dataset, months, opts.now()))
		},
	}
	cmd.Flags().IntVar(&months, "months", 12, "meses da previsão do painel")

	return cmd
}

func newForecastCommand(opts *rootOptions) *cobra.Command {
	var (
		months int
		start  string
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Projeta a receita mês a mês",
		RunE: func(cmd *cobra.Command, args []string) error {
			startMonth := utils.FirstDayOfMonth(opts.now())
			if start != "" {
				parsed, err := utils.ParseMonth(start)
				if err != nil {
					return errors.Wrapf(err, "start inválido %q, use YYYY-MM", start)
				}
				startMonth = parsed
			}

			dataset, err := loadDataset(opts.file)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), domain.Forecast(dataset.Contracts, dataset.Negotiations, months, startMonth))
		},
	}
	cmd.Flags().IntVar(&months, "months", 12, "quantidade de meses projetados")
	cmd.Flags().StringVar(&start, "start", "", "mês inicial no formato YYYY-MM (padrão: mês corrente)")

	return cmd
}

func newContractValueCommand() *cobra.Command {
	var (
		start   string
		end     string
		monthly float64
	)

	cmd := &cobra.Command{
		Use:   "contract-value",
		Short: "Calcula o valor total de um contrato",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, ok := utils.ParseInputDate(start)
			if !ok {
				return fmt.Errorf("start inválido %q, use YYYY-MM-DD", start)
			}
			endDate, ok := utils.ParseInputDate(end)
			if !ok {
				return fmt.Errorf("end inválido %q, use YYYY-MM-DD", end)
			}

			contract := domain.Contract{
				MonthlyValue: monthly,
				StartDate:    domain.Date{Time: startDate},
				EndDate:      domain.Date{Time: endDate},
			}

			return printJSON(cmd.OutOrStdout(), domain.ContractValue{
				MonthlyValue: monthly,
				Months:       domain.ContractMonths(contract),
				TotalValue:   domain.ContractTotalValue(contract),
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "data de início YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "data de término YYYY-MM-DD")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "valor mensal do contrato")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func loadDataset(path string) (domain.Dataset, error) {
	if path == "" {
		return repository.DemoDataset(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, errors.Wrap(err, "erro ao ler arquivo de dados")
	}

	var dataset domain.Dataset
	if err := json.Unmarshal(content, &dataset); err != nil {
		return domain.Dataset{}, errors.Wrap(err, "arquivo de dados inválido")
	}

	return dataset, nil
}

func printJSON(out io.Writer, value any) error {
	pretty, err := utils.PrettyJson(value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, pretty)
	return err
}
