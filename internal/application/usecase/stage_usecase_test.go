package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeStageRepo struct {
	byKey map[string]*entity.StageInstance // tenderID|stage
}

func newFakeStageRepo() *fakeStageRepo {
	return &fakeStageRepo{byKey: map[string]*entity.StageInstance{}}
}

func key(tenderID string, stage seace.Stage) string { return tenderID + "|" + string(stage) }

func (f *fakeStageRepo) Create(inst *entity.StageInstance) error {
	k := key(inst.TenderID, inst.Stage)
	if _, ok := f.byKey[k]; ok {
		return domain.ErrDuplicate
	}
	f.byKey[k] = inst
	return nil
}

func (f *fakeStageRepo) GetByTenderAndStage(tenderID string, stage seace.Stage) (*entity.StageInstance, error) {
	return f.byKey[key(tenderID, stage)], nil
}

func (f *fakeStageRepo) ListByTender(tenderID string) ([]*entity.StageInstance, error) {
	var out []*entity.StageInstance
	for _, stage := range seace.AllStages() {
		if inst, ok := f.byKey[key(tenderID, stage)]; ok {
			out = append(out, inst)
		}
	}
	return out, nil
}

func (f *fakeStageRepo) UpdateFields(id string, fields map[string]string) error {
	for _, inst := range f.byKey {
		if inst.ID == id {
			inst.Fields = fields
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStageRepo) UpdateStatus(id, status string) error {
	for _, inst := range f.byKey {
		if inst.ID == id {
			inst.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeTxRunner struct{ stageRepo repository.StageRepository }

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.StageRepository) error) error {
	return fn(f.stageRepo)
}

type fakeTenderRepo struct{ tenders map[string]*entity.Tender }

func (f *fakeTenderRepo) Create(t *entity.Tender) error               { f.tenders[t.ID] = t; return nil }
func (f *fakeTenderRepo) GetByID(id string) (*entity.Tender, error)   { return f.tenders[id], nil }
func (f *fakeTenderRepo) GetByNomenclature(string) (*entity.Tender, error) { return nil, nil }
func (f *fakeTenderRepo) Update(t *entity.Tender) error               { f.tenders[t.ID] = t; return nil }
func (f *fakeTenderRepo) List(int, int) ([]*entity.Tender, error)     { return nil, nil }
func (f *fakeTenderRepo) Delete(id string) error                      { delete(f.tenders, id); return nil }

type fakeRuleRepo struct{ active []*entity.DeadlineRule }

func (f *fakeRuleRepo) Create(*entity.DeadlineRule) error                { return nil }
func (f *fakeRuleRepo) GetByID(string) (*entity.DeadlineRule, error)     { return nil, nil }
func (f *fakeRuleRepo) Update(*entity.DeadlineRule) error                { return nil }
func (f *fakeRuleRepo) List(int, int) ([]*entity.DeadlineRule, error)    { return f.active, nil }
func (f *fakeRuleRepo) ListActive() ([]*entity.DeadlineRule, error)      { return f.active, nil }
func (f *fakeRuleRepo) Delete(string) error                              { return nil }

type fakeCustomRepo struct{ rules []*entity.CustomDeadlineRule }

func (f *fakeCustomRepo) Create(*entity.CustomDeadlineRule) error            { return nil }
func (f *fakeCustomRepo) GetByID(string) (*entity.CustomDeadlineRule, error) { return nil, nil }
func (f *fakeCustomRepo) GetByTenderAndField(string, seace.Stage, string) (*entity.CustomDeadlineRule, error) {
	return nil, nil
}
func (f *fakeCustomRepo) ListByTender(string) ([]*entity.CustomDeadlineRule, error) {
	return f.rules, nil
}
func (f *fakeCustomRepo) Update(*entity.CustomDeadlineRule) error { return nil }
func (f *fakeCustomRepo) Delete(string) error                     { return nil }

// ── helpers ───────────────────────────────────────────────────────────────────

const testTenderID = "tender-1"

func newStageUC(stageRepo *fakeStageRepo) *usecase.StageUseCase {
	tenderRepo := &fakeTenderRepo{tenders: map[string]*entity.Tender{
		testTenderID: {ID: testTenderID, Nomenclature: "LP-001-2024", Status: entity.TenderStatusActive},
	}}
	return usecase.NewStageUseCase(
		&fakeTxRunner{stageRepo: stageRepo},
		tenderRepo,
		stageRepo,
		&fakeRuleRepo{},
		&fakeCustomRepo{},
		domseace.NewValidator(domseace.DefaultCatalog()),
	)
}

// ── tests del candado de progresión ───────────────────────────────────────────

func TestCreateStage_S1SinCandado(t *testing.T) {
	uc := newStageUC(newFakeStageRepo())

	resp, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{
		Stage:  "S1",
		Fields: map[string]string{"request_presentation_date": "2024-01-10"},
	})

	require.NoError(t, err, "S1 no tiene etapa anterior: se crea sin candado")
	assert.Equal(t, "S1", resp.Stage)
	assert.Equal(t, entity.StageStatusInProgress, resp.Status)
	assert.False(t, resp.Complete, "falta un requerido de S1")
}

func TestCreateStage_BloqueadaSinEtapaAnterior(t *testing.T) {
	uc := newStageUC(newFakeStageRepo())

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S2"})

	var gateErr *usecase.GateError
	require.ErrorAs(t, err, &gateErr, "sin instancia de S1 la creación de S2 se bloquea")
	assert.Equal(t, seace.StagePreparatory, gateErr.Stage)
	assert.Equal(t, []string{domseace.MissingStageLabel}, gateErr.Missing)
}

func TestCreateStage_BloqueadaConEtapaAnteriorIncompleta(t *testing.T) {
	stageRepo := newFakeStageRepo()
	uc := newStageUC(stageRepo)

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{
		Stage:  "S1",
		Fields: map[string]string{"request_presentation_date": "2024-01-10"},
	})
	require.NoError(t, err)

	_, err = uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S2"})

	var gateErr *usecase.GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, []string{"Aprobación de expediente (Formato 2)"}, gateErr.Missing,
		"el bloqueo lista las etiquetas de los campos faltantes")
}

func TestCreateStage_PermitidaConEtapaAnteriorCompleta(t *testing.T) {
	stageRepo := newFakeStageRepo()
	uc := newStageUC(stageRepo)

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{
		Stage: "S1",
		Fields: map[string]string{
			"request_presentation_date":   "2024-01-10",
			"approval_expedient_format_2": "2024-01-20",
		},
	})
	require.NoError(t, err)

	resp, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S2"})

	require.NoError(t, err, "S1 completa autoriza la creación de S2")
	assert.Equal(t, "S2", resp.Stage)
}

func TestCreateStage_DuplicadaRechazada(t *testing.T) {
	stageRepo := newFakeStageRepo()
	uc := newStageUC(stageRepo)

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S1"})
	require.NoError(t, err)

	_, err = uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "a lo más una instancia por etapa")
}

func TestCreateStage_ElCandadoLeeLoPersistido(t *testing.T) {
	// El candado decide sobre el estado guardado de S1 aunque el request de
	// S2 traiga campos: los fields del request son de S2, nunca completan S1.
	stageRepo := newFakeStageRepo()
	uc := newStageUC(stageRepo)

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{
		Stage:  "S1",
		Fields: map[string]string{"request_presentation_date": "2024-01-10"},
	})
	require.NoError(t, err)

	_, err = uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{
		Stage:  "S2",
		Fields: map[string]string{"published_at": "2024-02-01"},
	})

	var gateErr *usecase.GateError
	require.ErrorAs(t, err, &gateErr)
}

func TestCreateStage_EtapaInvalida(t *testing.T) {
	uc := newStageUC(newFakeStageRepo())
	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S9"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCreateStage_CampoDesconocidoRechazado(t *testing.T) {
	uc := newStageUC(newFakeStageRepo())
	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{
		Stage:  "S1",
		Fields: map[string]string{"no_existe": "2024-01-10"},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ── guardado de campos ────────────────────────────────────────────────────────

func TestUpdateFields_RecalculaValidacion(t *testing.T) {
	stageRepo := newFakeStageRepo()
	uc := newStageUC(stageRepo)

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S1"})
	require.NoError(t, err)

	resp, err := uc.UpdateFields(testTenderID, seace.StagePreparatory, dto.UpdateStageFieldsRequest{
		Fields: map[string]string{
			"request_presentation_date":   "2024-01-10",
			"approval_expedient_format_2": "2024-01-20",
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Complete)
	assert.Empty(t, resp.MissingFields)
	assert.NotEmpty(t, resp.Validation, "el guardado devuelve la validación de todos los campos de fecha")
}

func TestUpdateFields_EtapaNoCreada(t *testing.T) {
	uc := newStageUC(newFakeStageRepo())
	_, err := uc.UpdateFields(testTenderID, seace.StageContract, dto.UpdateStageFieldsRequest{
		Fields: map[string]string{"contract_signing": "2024-05-02"},
	})
	assert.True(t, errors.Is(err, domain.ErrStageNotCreated))
}

func TestUpdateFields_PlazoExcedidoNoBloqueaGuardar(t *testing.T) {
	stageRepo := newFakeStageRepo()
	tenderRepo := &fakeTenderRepo{tenders: map[string]*entity.Tender{
		testTenderID: {ID: testTenderID, Status: entity.TenderStatusActive},
	}}
	ruleRepo := &fakeRuleRepo{active: []*entity.DeadlineRule{{
		ID:          "rule-1",
		FromStage:   seace.StagePreparatory,
		FromField:   "request_presentation_date",
		ToStage:     seace.StagePreparatory,
		ToField:     "approval_expedient_date",
		LegalDays:   2,
		IsActive:    true,
		IsMandatory: true,
	}}}
	uc := usecase.NewStageUseCase(
		&fakeTxRunner{stageRepo: stageRepo}, tenderRepo, stageRepo,
		ruleRepo, &fakeCustomRepo{},
		domseace.NewValidator(domseace.DefaultCatalog()),
	)

	_, err := uc.CreateStage(context.Background(), testTenderID, "user-1", dto.CreateStageRequest{Stage: "S1"})
	require.NoError(t, err)

	resp, err := uc.UpdateFields(testTenderID, seace.StagePreparatory, dto.UpdateStageFieldsRequest{
		Fields: map[string]string{
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-20", // 19 días > 2 permitidos
		},
	})

	require.NoError(t, err, "un plazo excedido anota pero nunca impide guardar")
	fv := resp.Validation["approval_expedient_date"]
	assert.Equal(t, "exceeded", fv.Status)
	assert.Equal(t, "danger", fv.Color)
	require.Len(t, fv.Tooltip, 1)
	assert.Contains(t, fv.Tooltip[0], "días calendario")
}
