package cases

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custodian/internal/application/casefile/usecases"
	"custodian/internal/interfaces/http/handlers/testutil"
	"custodian/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateCaseUC struct {
	result *usecases.CreateCaseResult
	err    error
	cmd    usecases.CreateCaseCommand
}

func (m *mockCreateCaseUC) Execute(_ context.Context, cmd usecases.CreateCaseCommand) (*usecases.CreateCaseResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetCaseUC struct {
	result *usecases.CaseDTO
	err    error
}

func (m *mockGetCaseUC) Execute(_ context.Context, _ usecases.GetCaseQuery) (*usecases.CaseDTO, error) {
	return m.result, m.err
}

type mockListCasesUC struct {
	result *usecases.ListCasesResult
	err    error
	query  usecases.ListCasesQuery
}

func (m *mockListCasesUC) Execute(_ context.Context, q usecases.ListCasesQuery) (*usecases.ListCasesResult, error) {
	m.query = q
	return m.result, m.err
}

type mockUpdateCaseUC struct {
	result *usecases.CaseDTO
	err    error
}

func (m *mockUpdateCaseUC) Execute(_ context.Context, _ usecases.UpdateCaseCommand) (*usecases.CaseDTO, error) {
	return m.result, m.err
}

type mockSetCaseStatusUC struct {
	result *usecases.SetCaseStatusResult
	err    error
}

func (m *mockSetCaseStatusUC) Execute(_ context.Context, _ usecases.SetCaseStatusCommand) (*usecases.SetCaseStatusResult, error) {
	return m.result, m.err
}

type mockCloseCaseUC struct {
	result *usecases.CaseDTO
	err    error
}

func (m *mockCloseCaseUC) Execute(_ context.Context, _ usecases.CloseCaseCommand) (*usecases.CaseDTO, error) {
	return m.result, m.err
}

type mockArchiveCaseUC struct {
	result *usecases.CaseDTO
	err    error
}

func (m *mockArchiveCaseUC) Execute(_ context.Context, _ usecases.ArchiveCaseCommand) (*usecases.CaseDTO, error) {
	return m.result, m.err
}

type mockAuthoriseCaseUC struct {
	result *usecases.AuthoriseCaseResult
	err    error
	cmd    usecases.AuthoriseCaseCommand
}

func (m *mockAuthoriseCaseUC) Execute(_ context.Context, cmd usecases.AuthoriseCaseCommand) (*usecases.AuthoriseCaseResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockAssignCaseRoleUC struct {
	result *usecases.AssignCaseRoleResult
	err    error
}

func (m *mockAssignCaseRoleUC) Execute(_ context.Context, _ usecases.AssignCaseRoleCommand) (*usecases.AssignCaseRoleResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createCaseUC     createCaseUseCase
	getCaseUC        getCaseUseCase
	listCasesUC      listCasesUseCase
	updateCaseUC     updateCaseUseCase
	setCaseStatusUC  setCaseStatusUseCase
	closeCaseUC      closeCaseUseCase
	archiveCaseUC    archiveCaseUseCase
	authoriseCaseUC  authoriseCaseUseCase
	assignCaseRoleUC assignCaseRoleUseCase
}

func newTestCaseHandler(deps testDeps) *CaseHandler {
	return NewCaseHandler(
		deps.createCaseUC,
		deps.getCaseUC,
		deps.listCasesUC,
		deps.updateCaseUC,
		deps.setCaseStatusUC,
		deps.closeCaseUC,
		deps.archiveCaseUC,
		deps.authoriseCaseUC,
		deps.assignCaseRoleUC,
		testutil.NewMockLogger(),
	)
}

// =====================================================================
// CreateCase
// =====================================================================

func TestCaseHandler_CreateCase_Success(t *testing.T) {
	mockUC := &mockCreateCaseUC{
		result: &usecases.CreateCaseResult{
			CaseID:    1,
			Name:      "Operation Kestrel",
			Status:    "pending",
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestCaseHandler(testDeps{createCaseUC: mockUC})

	reqBody := CreateCaseRequest{
		Name:       "Operation Kestrel",
		Background: "Suspected data exfiltration",
		Private:    true,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases", reqBody)
	testutil.SetAuthContext(c, 7)

	handler.CreateCase(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), mockUC.cmd.ActorID)
	assert.True(t, mockUC.cmd.Private)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestCaseHandler_CreateCase_BindError(t *testing.T) {
	handler := newTestCaseHandler(testDeps{})

	// Missing required name
	reqBody := map[string]string{"background": "no name"}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases", reqBody)
	testutil.SetAuthContext(c, 7)

	handler.CreateCase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestCaseHandler_CreateCase_NotAuthenticated(t *testing.T) {
	handler := newTestCaseHandler(testDeps{})

	reqBody := CreateCaseRequest{Name: "Operation Kestrel"}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases", reqBody)
	// No auth context set

	handler.CreateCase(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCaseHandler_CreateCase_Conflict(t *testing.T) {
	mockUC := &mockCreateCaseUC{err: errors.NewConflictError("case name already in use")}
	handler := newTestCaseHandler(testDeps{createCaseUC: mockUC})

	reqBody := CreateCaseRequest{Name: "Operation Kestrel"}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases", reqBody)
	testutil.SetAuthContext(c, 7)

	handler.CreateCase(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// SetStatus
// =====================================================================

func TestCaseHandler_SetStatus_IgnoredStatusStillOK(t *testing.T) {
	// An unknown status is a no-op, not an error; the result reports it.
	mockUC := &mockSetCaseStatusUC{
		result: &usecases.SetCaseStatusResult{CaseID: 3, Status: "pending", Applied: false},
	}
	handler := newTestCaseHandler(testDeps{setCaseStatusUC: mockUC})

	reqBody := SetCaseStatusRequest{Status: "bogus"}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases/3/status", reqBody)
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.SetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result usecases.SetCaseStatusResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.False(t, result.Applied)
	assert.Equal(t, "pending", result.Status)
}

func TestCaseHandler_SetStatus_InvalidID(t *testing.T) {
	handler := newTestCaseHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/cases/abc/status", SetCaseStatusRequest{Status: "open"})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "abc")

	handler.SetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Authorise
// =====================================================================

func TestCaseHandler_Authorise_Granted(t *testing.T) {
	mockUC := &mockAuthoriseCaseUC{
		result: &usecases.AuthoriseCaseResult{CaseID: 5, Code: "granted", Status: "approved"},
	}
	handler := newTestCaseHandler(testDeps{authoriseCaseUC: mockUC})

	granted := true
	reqBody := AuthoriseCaseRequest{Granted: &granted, Reason: "scope agreed"}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases/5/authorise", reqBody)
	testutil.SetAuthContext(c, 9)
	testutil.SetURLParam(c, "id", "5")

	handler.Authorise(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.cmd.Granted)
	assert.Equal(t, uint(9), mockUC.cmd.ActorID)
}

func TestCaseHandler_Authorise_Forbidden(t *testing.T) {
	mockUC := &mockAuthoriseCaseUC{err: errors.NewForbiddenError("permission denied")}
	handler := newTestCaseHandler(testDeps{authoriseCaseUC: mockUC})

	granted := false
	reqBody := AuthoriseCaseRequest{Granted: &granted}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases/5/authorise", reqBody)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "5")

	handler.Authorise(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCaseHandler_Authorise_MissingDecision(t *testing.T) {
	handler := newTestCaseHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/cases/5/authorise", map[string]string{"reason": "no decision"})
	testutil.SetAuthContext(c, 9)
	testutil.SetURLParam(c, "id", "5")

	handler.Authorise(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// ListCases
// =====================================================================

func TestCaseHandler_ListCases_Filters(t *testing.T) {
	mockUC := &mockListCasesUC{result: &usecases.ListCasesResult{Total: 0}}
	handler := newTestCaseHandler(testDeps{listCasesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/cases", nil)
	testutil.SetAuthContext(c, 7)
	testutil.SetQueryParams(c, map[string]string{
		"status":  "open,closed",
		"private": "true",
		"page":    "2",
	})

	handler.ListCases(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"open", "closed"}, mockUC.query.Statuses)
	require.NotNil(t, mockUC.query.Private)
	assert.True(t, *mockUC.query.Private)
	assert.Equal(t, 2, mockUC.query.Page)
}

// =====================================================================
// CloseCase
// =====================================================================

func TestCaseHandler_CloseCase_RequiresReason(t *testing.T) {
	handler := newTestCaseHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/cases/4/close", map[string]string{})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "4")

	handler.CloseCase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCaseHandler_AssignRole_Success(t *testing.T) {
	mockUC := &mockAssignCaseRoleUC{
		result: &usecases.AssignCaseRoleResult{CaseID: 4, Role: "principal_case_manager", UserID: 11},
	}
	handler := newTestCaseHandler(testDeps{assignCaseRoleUC: mockUC})

	reqBody := AssignCaseRoleRequest{Role: "principal_case_manager", UserID: 11}
	c, w := testutil.NewTestContext(http.MethodPost, "/cases/4/roles", reqBody)
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "4")

	handler.AssignRole(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
