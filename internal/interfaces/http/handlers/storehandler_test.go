package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storedto "marketplace/internal/application/store/dto"
	storeUsecases "marketplace/internal/application/store/usecases"
	"marketplace/internal/interfaces/http/handlers/testutil"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateStoreUC struct {
	got    storeUsecases.CreateStoreCommand
	called bool
	err    error
}

func (m *mockCreateStoreUC) Execute(_ context.Context, cmd storeUsecases.CreateStoreCommand) (*storedto.StoreDTO, error) {
	m.got = cmd
	m.called = true
	if m.err != nil {
		return nil, m.err
	}
	return &storedto.StoreDTO{ID: 1, UserID: cmd.UserID, Name: cmd.Name, ShopStatus: "PENDING", Status: "OFFLINE"}, nil
}

type mockListStoresUC struct {
	got      storeUsecases.ListStoresQuery
	gotCatID uint
	err      error
}

func (m *mockListStoresUC) Execute(_ context.Context, q storeUsecases.ListStoresQuery) (*storeUsecases.ListStoresResult, error) {
	m.got = q
	if m.err != nil {
		return nil, m.err
	}
	return &storeUsecases.ListStoresResult{Stores: []*storedto.StoreDTO{{ID: 1}}, Total: 1}, nil
}

type mockListStoresByCategoryUC struct {
	mockListStoresUC
}

func (m *mockListStoresByCategoryUC) Execute(ctx context.Context, categoryID uint, q storeUsecases.ListStoresQuery) (*storeUsecases.ListStoresResult, error) {
	m.gotCatID = categoryID
	return m.mockListStoresUC.Execute(ctx, q)
}

type mockGetStoreUC struct {
	gotID uint
	err   error
}

func (m *mockGetStoreUC) Execute(_ context.Context, id uint) (*storedto.StoreDTO, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return &storedto.StoreDTO{ID: id}, nil
}

type mockModerateStoreUC struct {
	gotID  uint
	status string
	err    error
}

func (m *mockModerateStoreUC) Execute(_ context.Context, storeID uint) (*storedto.StoreDTO, error) {
	m.gotID = storeID
	if m.err != nil {
		return nil, m.err
	}
	return &storedto.StoreDTO{ID: storeID, ShopStatus: m.status}, nil
}

type mockSetStoreStatusUC struct {
	got storeUsecases.SetStoreStatusCommand
	err error
}

func (m *mockSetStoreStatusUC) Execute(_ context.Context, cmd storeUsecases.SetStoreStatusCommand) (*storedto.StoreDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &storedto.StoreDTO{ID: cmd.StoreID, UserID: cmd.UserID}, nil
}

type mockUpdateStoreCategoriesUC struct {
	got storeUsecases.UpdateStoreCategoriesCommand
	err error
}

func (m *mockUpdateStoreCategoriesUC) Execute(_ context.Context, cmd storeUsecases.UpdateStoreCategoriesCommand) (*storedto.StoreDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &storedto.StoreDTO{ID: cmd.StoreID}, nil
}

type storeMocks struct {
	create     *mockCreateStoreUC
	list       *mockListStoresUC
	byCategory *mockListStoresByCategoryUC
	get        *mockGetStoreUC
	getMine    *mockGetStoreUC
	approve    *mockModerateStoreUC
	reject     *mockModerateStoreUC
	online     *mockSetStoreStatusUC
	offline    *mockSetStoreStatusUC
	categories *mockUpdateStoreCategoriesUC
}

func newTestStoreHandler() (*StoreHandler, *storeMocks) {
	m := &storeMocks{
		create:     &mockCreateStoreUC{},
		list:       &mockListStoresUC{},
		byCategory: &mockListStoresByCategoryUC{},
		get:        &mockGetStoreUC{},
		getMine:    &mockGetStoreUC{},
		approve:    &mockModerateStoreUC{status: "APPROVED"},
		reject:     &mockModerateStoreUC{status: "REJECTED"},
		online:     &mockSetStoreStatusUC{},
		offline:    &mockSetStoreStatusUC{},
		categories: &mockUpdateStoreCategoriesUC{},
	}
	h := NewStoreHandler(StoreUseCases{
		Create:           m.create,
		List:             m.list,
		ListByCategory:   m.byCategory,
		Get:              m.get,
		GetMine:          m.getMine,
		Approve:          m.approve,
		Reject:           m.reject,
		SetOnline:        m.online,
		SetOffline:       m.offline,
		UpdateCategories: m.categories,
	}, testutil.NewMockLogger())
	return h, m
}

// =====================================================================
// TestStoreHandler_CreateStore
// =====================================================================

func TestStoreHandler_CreateStore_Success(t *testing.T) {
	h, m := newTestStoreHandler()

	body := map[string]interface{}{
		"name":        "Dhaka Crafts",
		"location":    "Dhaka",
		"tags":        []string{"handmade"},
		"phone":       "+8801712345678",
		"email":       "shop@example.com",
		"categoryIds": []uint{2, 3},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/stores/create-store", body)
	testutil.SetAuthContext(c, 9, authorization.RoleSeller)
	h.CreateStore(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(9), m.create.got.UserID)
	assert.Equal(t, "Dhaka Crafts", m.create.got.Name)
	assert.Equal(t, []uint{2, 3}, m.create.got.CategoryIDs)
	assert.Equal(t, "+8801712345678", m.create.got.Profile.Phone)
	assert.Equal(t, []string{"handmade"}, m.create.got.Profile.Tags)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Store created successfully", resp.Message)
}

func TestStoreHandler_CreateStore_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing name", body: map[string]interface{}{"categoryIds": []uint{1}}},
		{name: "no categories", body: map[string]interface{}{"name": "x", "categoryIds": []uint{}}},
		{name: "bad phone", body: map[string]interface{}{"name": "x", "categoryIds": []uint{1}, "phone": "12345"}},
		{name: "bad email", body: map[string]interface{}{"name": "x", "categoryIds": []uint{1}, "email": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestStoreHandler()

			c, w := testutil.NewTestContext(http.MethodPost, "/stores/create-store", tt.body)
			testutil.SetAuthContext(c, 9, authorization.RoleSeller)
			h.CreateStore(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, m.create.called)
		})
	}
}

func TestStoreHandler_CreateStore_Conflict(t *testing.T) {
	h, m := newTestStoreHandler()
	m.create.err = errors.NewConflictError("You already have a store")

	c, w := testutil.NewTestContext(http.MethodPost, "/stores/create-store", map[string]interface{}{"name": "x", "categoryIds": []uint{1}})
	testutil.SetAuthContext(c, 9, authorization.RoleSeller)
	h.CreateStore(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStoreHandler_CreateStore_Unauthenticated(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/stores/create-store", map[string]interface{}{"name": "x", "categoryIds": []uint{1}})
	h.CreateStore(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, m.create.called)
}

// =====================================================================
// TestStoreHandler_List
// =====================================================================

func TestStoreHandler_ListStores_Filters(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/stores", nil)
	testutil.SetQueryParams(c, map[string]string{
		"page":       "3",
		"limit":      "4",
		"search":     "craft",
		"shopStatus": "APPROVED",
		"status":     "ONLINE",
		"categoryId": "2",
	})
	h.ListStores(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, m.list.got.Page)
	assert.Equal(t, 4, m.list.got.PageSize)
	assert.Equal(t, "craft", m.list.got.Search)
	assert.Equal(t, "APPROVED", m.list.got.ShopStatus)
	assert.Equal(t, "ONLINE", m.list.got.Status)
	require.NotNil(t, m.list.got.CategoryID)
	assert.Equal(t, uint(2), *m.list.got.CategoryID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.Page)
}

func TestStoreHandler_ListStores_InvalidStatus(t *testing.T) {
	h, m := newTestStoreHandler()
	m.list.err = errors.NewValidationError("invalid shopStatus", "DRAFT")

	c, w := testutil.NewTestContext(http.MethodGet, "/stores", nil)
	testutil.SetQueryParams(c, map[string]string{"shopStatus": "DRAFT"})
	h.ListStores(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreHandler_ListStoresByCategory(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/stores/category/4", nil)
	testutil.SetURLParam(c, "categoryId", "4")
	h.ListStoresByCategory(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), m.byCategory.gotCatID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Stores by category retrieved successfully", resp.Message)
}

// =====================================================================
// TestStoreHandler_Get / Moderation / Status
// =====================================================================

func TestStoreHandler_GetStore(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/stores/6", nil)
	testutil.SetURLParam(c, "id", "6")
	h.GetStore(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(6), m.get.gotID)
}

func TestStoreHandler_GetMyStore_UsesCurrentUser(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/stores/my/store", nil)
	testutil.SetAuthContext(c, 9, authorization.RoleSeller)
	h.GetMyStore(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), m.getMine.gotID)
}

func TestStoreHandler_Moderation(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/stores/6/reject", nil)
	testutil.SetURLParam(c, "id", "6")
	h.RejectStore(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(6), m.reject.gotID)
	assert.Zero(t, m.approve.gotID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var dto storedto.StoreDTO
	require.NoError(t, json.Unmarshal(resp.Data, &dto))
	assert.Equal(t, "REJECTED", dto.ShopStatus)
}

func TestStoreHandler_SetStoreOnline(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "approved owner", wantStatus: http.StatusOK},
		{name: "not approved", ucErr: errors.NewBadRequestError("Store must be approved before going online"), wantStatus: http.StatusBadRequest},
		{name: "not owner", ucErr: errors.NewNotFoundError("Store not found"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestStoreHandler()
			m.online.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPatch, "/stores/6/online", nil)
			testutil.SetURLParam(c, "id", "6")
			testutil.SetAuthContext(c, 9, authorization.RoleSeller)
			h.SetStoreOnline(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, storeUsecases.SetStoreStatusCommand{StoreID: 6, UserID: 9}, m.online.got)
		})
	}
}

func TestStoreHandler_UpdateStoreCategories(t *testing.T) {
	h, m := newTestStoreHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/stores/6/categories", map[string]interface{}{"categoryIds": []uint{5, 7}})
	testutil.SetURLParam(c, "id", "6")
	testutil.SetAuthContext(c, 9, authorization.RoleSeller)
	h.UpdateStoreCategories(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{5, 7}, m.categories.got.CategoryIDs)
	assert.Equal(t, uint(9), m.categories.got.UserID)
}
