package render

import (
	"encoding/json"
	"net/http"

	"lever/core"
	"lever/handler/codes"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(v)
}

// Error write error
func Error(w http.ResponseWriter, err error) {
	status, code, msg := http.StatusInternalServerError, int(core.ErrUnknown), err.Error()
	if ec, ok := err.(core.ErrorCode); ok {
		status = codes.StatusCode(ec)
		code = int(ec)
		msg = codes.Message(ec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(H{"code": code, "msg": msg})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	_ = json.NewEncoder(w).Encode(H{"code": -1, "msg": err.Error()})
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)

	_ = json.NewEncoder(w).Encode(H{"code": -1, "msg": err.Error()})
}
