package workflow_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbenabda.com/grafana-workflows/pkg/grafana"
	"mbenabda.com/grafana-workflows/pkg/result"
	"mbenabda.com/grafana-workflows/pkg/workflow"
)

func failed(err error) result.Result[*grafana.Response] {
	return result.Err[*grafana.Response](result.NewErrorInfo(err))
}

func assertAbsorbed(t *testing.T, r result.Result[*grafana.Response]) {
	t.Helper()
	v, ok := r.Value()
	require.True(t, ok, "expected Ok, got %v", r)
	assert.Equal(t, map[string]interface{}{"message": "already exists"}, v.Value())
}

func TestAbsorbStructuredConflict(t *testing.T) {
	err := &grafana.APIError{
		Method:     http.MethodPost,
		Path:       "/api/datasources",
		StatusCode: http.StatusConflict,
		Status:     "409 Conflict",
		Message:    "data source with the same name already exists",
	}
	assertAbsorbed(t, workflow.AbsorbAlreadyExists(failed(err)))
}

func TestAbsorbMessageOnly(t *testing.T) {
	assertAbsorbed(t, workflow.AbsorbAlreadyExists(failed(errors.New("datasource already exists"))))
}

func TestAbsorbLeavesOtherErrors(t *testing.T) {
	for _, err := range []error{
		errors.New("connection refused"),
		&grafana.APIError{StatusCode: http.StatusConflict, Status: "409 Conflict", Message: "version-mismatched"},
		&grafana.APIError{StatusCode: http.StatusConflict, Status: "409 Conflict", Message: "a dashboard with the same name in the folder"},
		&grafana.APIError{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized", Message: "invalid username or password"},
	} {
		r := failed(err)
		assert.Equal(t, r, workflow.AbsorbAlreadyExists(r), err.Error())
	}
}

func TestAbsorbLeavesSuccess(t *testing.T) {
	r := result.Ok(grafana.NewResponse(map[string]interface{}{"id": 1}))
	assert.Equal(t, r, workflow.AbsorbAlreadyExists(r))
}

func TestFormat(t *testing.T) {
	ok := workflow.Format("Health Check", result.Ok(grafana.NewResponse(map[string]interface{}{"database": "ok"})))
	assert.Equal(t, `[Health Check] Success: {"database":"ok"}`, ok)

	ko := workflow.Format("Health Check", result.Err[int](result.ErrorInfo{Message: "connection refused"}))
	assert.Equal(t, "[Health Check] Failure: connection refused", ko)
}

func TestFormatAlwaysContainsLabel(t *testing.T) {
	for _, label := range []string{"", "DataSources", "a [weird] label"} {
		assert.Contains(t, workflow.Format(label, result.Ok(1)), label)
		assert.Contains(t, workflow.Format(label, result.Ok(1)), "Success")
		assert.Contains(t, workflow.Format(label, result.Err[int](result.ErrorInfo{Message: "x"})), label)
		assert.Contains(t, workflow.Format(label, result.Err[int](result.ErrorInfo{Message: "x"})), "Failure")
	}
}
