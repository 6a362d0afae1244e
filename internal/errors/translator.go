package errors

import "net/http"

// Entity constructors and request decoding fail with machine-readable
// codes ("NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY", ...). Translate maps
// a known code to its user-facing localized error; anything unrecognized
// passes through untouched and surfaces as an internal error.

type translation struct {
	message    string
	statusCode int
}

var translations = map[string]translation{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":                            {"tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada", http.StatusBadRequest},
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":                       {"tidak dapat membuat user baru karena tipe data tidak sesuai", http.StatusBadRequest},
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                                    {"tidak dapat membuat user baru karena karakter username melebihi batas limit", http.StatusBadRequest},
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER":                  {"tidak dapat membuat user baru karena username mengandung karakter terlarang", http.StatusBadRequest},
	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":                               {"harus mengirimkan username dan password", http.StatusBadRequest},
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION":                          {"username dan password harus string", http.StatusBadRequest},
	"REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":            {"harus mengirimkan token refresh", http.StatusBadRequest},
	"REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION": {"refresh token harus string", http.StatusBadRequest},
	"DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":             {"harus mengirimkan token refresh", http.StatusBadRequest},
	"DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION": {"refresh token harus string", http.StatusBadRequest},
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":                               {"tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", http.StatusBadRequest},
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":                          {"tidak dapat membuat thread baru karena tipe data tidak sesuai", http.StatusBadRequest},
	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":                              {"tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada", http.StatusBadRequest},
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":                         {"tidak dapat membuat komentar baru karena tipe data tidak sesuai", http.StatusBadRequest},
	"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":                                {"tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada", http.StatusBadRequest},
	"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":                           {"tidak dapat membuat balasan baru karena tipe data tidak sesuai", http.StatusBadRequest},
	"GET_COMMENT.COMMENT_NOT_FOUND":                                        {"komentar tidak ditemukan", http.StatusNotFound},
	"AUTHORIZATION_ERROR.UNAUTHORIZED":                                     {"anda tidak berhak mengakses resource ini", http.StatusForbidden},
}

func Translate(err error) error {
	if err == nil {
		return nil
	}
	t, ok := translations[err.Error()]
	if !ok {
		return err
	}
	return &ErrorWithStatusCode{Message: t.message, StatusCode: t.statusCode}
}
