package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorydto "marketplace/internal/application/category/dto"
	categoryUsecases "marketplace/internal/application/category/usecases"
	"marketplace/internal/interfaces/http/handlers/testutil"
	"marketplace/internal/shared/errors"
)

type mockCreateCategoryUC struct {
	got categoryUsecases.CreateCategoryCommand
	err error
}

func (m *mockCreateCategoryUC) Execute(_ context.Context, cmd categoryUsecases.CreateCategoryCommand) (*categorydto.CategoryDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &categorydto.CategoryDTO{ID: 1, Name: cmd.Name, Type: cmd.Type}, nil
}

type mockListCategoriesUC struct {
	got categoryUsecases.ListCategoriesQuery
}

func (m *mockListCategoriesUC) Execute(_ context.Context, q categoryUsecases.ListCategoriesQuery) (*categoryUsecases.ListCategoriesResult, error) {
	m.got = q
	return &categoryUsecases.ListCategoriesResult{
		Categories: []*categorydto.CategoryDTO{{ID: 1, Name: "Fashion", Type: "STORE"}},
		Total:      1,
	}, nil
}

type mockListCategoriesByTypeUC struct {
	gotType string
	err     error
}

func (m *mockListCategoriesByTypeUC) Execute(_ context.Context, rawType string) ([]*categorydto.CategoryDTO, error) {
	m.gotType = rawType
	if m.err != nil {
		return nil, m.err
	}
	return []*categorydto.CategoryDTO{{ID: 1, Type: "PRODUCT"}}, nil
}

type mockGetCategoryUC struct {
	err error
}

func (m *mockGetCategoryUC) Execute(_ context.Context, id uint) (*categorydto.CategoryDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &categorydto.CategoryDTO{ID: id}, nil
}

type mockUpdateCategoryUC struct {
	got categoryUsecases.UpdateCategoryCommand
}

func (m *mockUpdateCategoryUC) Execute(_ context.Context, cmd categoryUsecases.UpdateCategoryCommand) (*categorydto.CategoryDTO, error) {
	m.got = cmd
	return &categorydto.CategoryDTO{ID: cmd.CategoryID}, nil
}

type mockDeleteCategoryUC struct {
	err error
}

func (m *mockDeleteCategoryUC) Execute(_ context.Context, _ uint) error {
	return m.err
}

func newTestCategoryHandler(
	create createCategoryUseCase,
	list listCategoriesUseCase,
	byType listCategoriesByTypeUseCase,
	get getCategoryUseCase,
	update updateCategoryUseCase,
	del deleteCategoryUseCase,
) *CategoryHandler {
	return NewCategoryHandler(create, list, byType, get, update, del, testutil.NewMockLogger())
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantStatus int
	}{
		{name: "success", body: CreateCategoryRequest{Name: "Fashion", Type: "STORE"}, wantStatus: http.StatusCreated},
		{name: "missing type", body: map[string]string{"name": "Fashion"}, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: CreateCategoryRequest{Name: "Fashion", Type: "STORE"}, ucErr: errors.NewConflictError("Category already exists"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockCreateCategoryUC{err: tt.ucErr}
			h := newTestCategoryHandler(uc, nil, nil, nil, nil, nil)

			c, w := testutil.NewTestContext(http.MethodPost, "/categorys/create-one", tt.body)
			h.CreateCategory(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	uc := &mockListCategoriesUC{}
	h := newTestCategoryHandler(nil, uc, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/categorys", nil)
	testutil.SetQueryParams(c, map[string]string{"type": "STORE", "search": "fa", "limit": "20"})
	h.ListCategories(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "STORE", uc.got.Type)
	assert.Equal(t, "fa", uc.got.Search)
	assert.Equal(t, 20, uc.got.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Contains(t, items[0], "_count")
}

func TestCategoryHandler_ListCategoriesByType(t *testing.T) {
	uc := &mockListCategoriesByTypeUC{}
	h := newTestCategoryHandler(nil, nil, uc, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/categorys/type/product", nil)
	testutil.SetURLParam(c, "type", "product")
	h.ListCategoriesByType(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "product", uc.gotType)
}

func TestCategoryHandler_ListCategoriesByType_Invalid(t *testing.T) {
	uc := &mockListCategoriesByTypeUC{err: errors.NewValidationError("invalid category type", "gadget")}
	h := newTestCategoryHandler(nil, nil, uc, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/categorys/type/gadget", nil)
	testutil.SetURLParam(c, "type", "gadget")
	h.ListCategoriesByType(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandler_GetCategory_NotFound(t *testing.T) {
	h := newTestCategoryHandler(nil, nil, nil, &mockGetCategoryUC{err: errors.NewNotFoundError("Category not found")}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/categorys/3", nil)
	testutil.SetURLParam(c, "id", "3")
	h.GetCategory(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_UpdateCategory_PartialFields(t *testing.T) {
	uc := &mockUpdateCategoryUC{}
	h := newTestCategoryHandler(nil, nil, nil, nil, uc, nil)

	c, w := testutil.NewTestContext(http.MethodPatch, "/categorys/3", map[string]string{"comment": "seasonal"})
	testutil.SetURLParam(c, "id", "3")
	h.UpdateCategory(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), uc.got.CategoryID)
	require.NotNil(t, uc.got.Comment)
	assert.Equal(t, "seasonal", *uc.got.Comment)
	assert.Nil(t, uc.got.Name)
}

func TestCategoryHandler_DeleteCategory_InUse(t *testing.T) {
	uc := &mockDeleteCategoryUC{err: errors.NewBadRequestError("Category is in use and cannot be deleted")}
	h := newTestCategoryHandler(nil, nil, nil, nil, nil, uc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/categorys/3", nil)
	testutil.SetURLParam(c, "id", "3")
	h.DeleteCategory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
