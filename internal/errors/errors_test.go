package gerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetch(t *testing.T) {
	assert.NoError(t, Fetch("sales", nil))

	cause := errors.New("timeout")
	err := fmt.Errorf("report: %w", Fetch("sales", cause))
	assert.ErrorIs(t, err, ErrDataFetch)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fetch sales: timeout")

	var fe *DataFetchError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "sales", fe.Source)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(fmt.Errorf("%w: x", ErrInvalidPeriod)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidHorizon))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrUnknownSection))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidRequest))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Fetch("lots", errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("x")))
}
