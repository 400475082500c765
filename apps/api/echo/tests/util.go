package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/karniella/revisions/apps/api/echo"
	"github.com/karniella/revisions/core"
	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/core/session"
	inmemdb "github.com/karniella/revisions/storage/inmem"
	testutil "github.com/karniella/revisions/tests"
)

const sessionCookieName = "revisions_session"

var (
	subRepo  content.SubjectRepository
	lesRepo  content.LessonRepository
	quizRepo content.QuizRepository

	errAuthRequired = apiErr{Success: false, Message: "authentication required"}
)

func setup(t *testing.T) *Server {
	t.Helper()

	// set up repos
	db := inmemdb.NewDB()
	subRepo = inmemdb.NewSubjectRepository(db)
	lesRepo = inmemdb.NewLessonRepository(db)
	quizRepo = inmemdb.NewQuizRepository(db)

	// set up services
	conf := testutil.NewConfig()
	ms := int64(1700000000000)
	contentSvc := content.NewServiceWithClock(subRepo, lesRepo, quizRepo, func() time.Time {
		ms++
		return time.UnixMilli(ms)
	})
	sessionSvc := session.NewService(inmemdb.NewSessionStore(), conf)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// set up server
	return NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     noopLogger{},
			ContentSvc: contentSvc,
			SessionSvc: sessionSvc,
			Validate:   validate,
			Translator: translator,
		},
	)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Fatal(msg string, args ...interface{}) {}

type apiErr struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	cookie   string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, cookie string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// login performs a real login round and returns the session cookie value.
func login(t *testing.T, server *Server) string {
	t.Helper()
	req, rec := newRequest(http.MethodPost, "/api/auth/login", []byte(`{"username":"karniella","password":"houedanou"}`))
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: code = %v; body = %v", rec.Code, rec.Body.String())
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	t.Fatal("login did not set a session cookie")
	return ""
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// envelope wraps data the way every content endpoint responds.
func envelope(t *testing.T, data interface{}) []byte {
	t.Helper()
	return marshallObj(t, map[string]interface{}{"success": true, "data": data})
}

func messageEnvelope(t *testing.T, msg string) []byte {
	t.Helper()
	return marshallObj(t, map[string]interface{}{"success": true, "message": msg})
}
