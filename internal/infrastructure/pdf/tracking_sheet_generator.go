// Package pdf implementa la generación de la Ficha de Seguimiento del proceso
// de selección.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nomenclatura  │  Estado + Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROCESO: Entidad / Objeto / Valor estimado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR ETAPA: campo | valor | estado de plazo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DURACIÓN: días por etapa + total calendario y hábiles       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

var _ usecase.TrackingSheetGenerator = (*MarotoSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 130, Blue: 60}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSheetGenerator implementa usecase.TrackingSheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator construye el generador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// GenerateTrackingSheet genera el PDF de la ficha y devuelve sus bytes.
func (g *MarotoSheetGenerator) GenerateTrackingSheet(_ context.Context, data usecase.TrackingSheetData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Seguimiento", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Tender))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tenderRow(data.Tender))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, inst := range data.Stages {
		m.AddRows(stageTitleRow(inst))
		for _, r := range stageFieldRows(inst, data.Report[string(inst.Stage)]) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(durationRow(data.Duration))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nomenclatura (izq) y estado de seguimiento (der).
func headerRow(t *entity.Tender) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("FICHA DE SEGUIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(t.Nomenclature, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New("Estado: "+statusLabel(t.Status), props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Emitida: "+t.UpdatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tenderRow: datos generales del proceso.
func tenderRow(t *entity.Tender) core.Row {
	valor := fmt.Sprintf("%s %s", t.Currency, t.EstimatedValue.StringFixed(2))
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Entidad: "+nonEmpty(t.EntityName, "—"), props.Text{Size: 9, Top: 1}),
			text.New("Objeto: "+nonEmpty(t.Description, "—"), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New("Valor estimado: "+valor, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// stageTitleRow: título de la etapa con su estado.
func stageTitleRow(inst *entity.StageInstance) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New(inst.Stage.Label(), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New(stageStatusLabel(inst.Status), props.Text{
			Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		})),
	)
}

// stageFieldRows: una fila por campo registrado, con su estado de plazo.
func stageFieldRows(inst *entity.StageInstance, report map[string]string) []core.Row {
	result := make([]core.Row, 0, len(inst.Fields))
	for _, def := range seace.Fields(inst.Stage) {
		value, ok := inst.Fields[def.Name]
		if !ok || value == "" {
			continue
		}
		status := report[def.Name]
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(def.Label, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(3).Add(text.New(value, props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(validationLabel(status), props.Text{
				Size: 8, Top: 1, Align: align.Right, Right: 1, Color: validationColor(status),
			})),
		))
	}
	return result
}

// durationRow: bloque de duración agregada.
func durationRow(d usecase.DurationData) core.Row {
	parts := ""
	for _, stage := range seace.AllStages() {
		if days, ok := d.PerStage[string(stage)]; ok {
			if parts != "" {
				parts += "   |   "
			}
			parts += fmt.Sprintf("%s: %d d", stage, days)
		}
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DURACIÓN DEL PROCESO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(parts, "Sin etapas con intervalo completo"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Total: %d días calendario (%d hábiles)",
				d.TotalCalendarDays, d.TotalBusinessDays), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 12,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case entity.TenderStatusActive:
		return "En seguimiento"
	case entity.TenderStatusFinished:
		return "Concluido"
	case entity.TenderStatusCancelled:
		return "Cancelado"
	}
	return status
}

func stageStatusLabel(status string) string {
	switch status {
	case entity.StageStatusPending:
		return "Pendiente"
	case entity.StageStatusInProgress:
		return "En curso"
	case entity.StageStatusCompleted:
		return "Completada"
	case entity.StageStatusCancelled:
		return "Cancelada"
	}
	return status
}

func validationLabel(status string) string {
	switch status {
	case "compliant":
		return "En plazo"
	case "exceeded":
		return "Plazo excedido"
	case "not_applicable":
		return "—"
	}
	return ""
}

func validationColor(status string) *props.Color {
	switch status {
	case "compliant":
		return colorGreen
	case "exceeded":
		return colorRed
	}
	return colorGray
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
