// Package graphtest fornece um servidor falso da Graph API para os testes de integração dos pacotes.
package graphtest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-ads-cli/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	Version     = "v22.0"
	AccessToken = "test-token-0123456789"
	AccountID   = "act_1"
)

// Request é uma requisição recebida pelo servidor falso
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Files  map[string]string // campo -> nome do arquivo
	Header http.Header
}

// Server é um httptest.Server roteado por httprouter que grava todas as requisições
type Server struct {
	*httptest.Server

	router   *httprouter.Router
	mu       sync.Mutex
	requests []Request
}

// New inicia o servidor; ele é encerrado automaticamente no fim do teste
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{router: httprouter.New()}
	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusBadRequest, 100, 33, "Unsupported get request. Object with ID does not exist")
	})
	s.Server = httptest.NewServer(http.HandlerFunc(s.record))
	t.Cleanup(s.Close)

	return s
}

func (s *Server) record(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Method: r.Method,
		Path:   strings.TrimPrefix(r.URL.Path, "/"+Version+"/"),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Files:  map[string]string{},
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err == nil {
			req.Form = url.Values(r.MultipartForm.Value)
			for field, headers := range r.MultipartForm.File {
				if len(headers) > 0 {
					req.Files[field] = headers[0].Filename
				}
			}
		}
	} else if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			req.Form = r.PostForm
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	s.router.ServeHTTP(w, r)
}

// Handle registra um handler para um caminho relativo à versão (ex.: "act_1/campaigns")
func (s *Server) Handle(method, path string, handler http.HandlerFunc) {
	s.router.HandlerFunc(method, "/"+Version+"/"+strings.TrimPrefix(path, "/"), handler)
}

// JSON registra uma resposta fixa
func (s *Server) JSON(method, path string, status int, body any) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Pages registra uma listagem paginada: a página i é servida para after="cursor-i"
func (s *Server) Pages(path string, pages ...[]any) {
	s.Handle(http.MethodGet, path, func(w http.ResponseWriter, r *http.Request) {
		index := 0
		if after := r.URL.Query().Get("after"); after != "" {
			n, err := strconv.Atoi(strings.TrimPrefix(after, "cursor-"))
			if err != nil || n >= len(pages) {
				WriteError(w, http.StatusBadRequest, 100, 0, "Invalid cursor")
				return
			}
			index = n
		}

		paging := map[string]any{
			"cursors": map[string]string{"before": fmt.Sprintf("cursor-%d", index), "after": fmt.Sprintf("cursor-%d", index+1)},
		}
		if index+1 < len(pages) {
			paging["next"] = fmt.Sprintf("%s/%s/%s?after=cursor-%d", s.URL, Version, path, index+1)
		}

		WriteJSON(w, http.StatusOK, map[string]any{"data": pages[index], "paging": paging})
	})
}

// Requests retorna uma cópia das requisições recebidas
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// RequestsTo filtra as requisições por método e caminho
func (s *Server) RequestsTo(method, path string) []Request {
	var out []Request
	for _, req := range s.Requests() {
		if req.Method == method && req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

// Config devolve uma configuração apontando para o servidor falso
func (s *Server) Config() *config.Config {
	return &config.Config{
		App: config.App{OutputFormat: config.OutputJSON},
		Meta: config.Meta{
			BaseURL:     s.URL,
			URL:         s.URL + "/" + Version,
			Version:     Version,
			AccessToken: AccessToken,
			AccountID:   AccountID,
		},
	}
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	switch typed := body.(type) {
	case string:
		io.WriteString(w, typed)
	default:
		json.NewEncoder(w).Encode(typed)
	}
}

// WriteError escreve um erro no formato da Graph API
func WriteError(w http.ResponseWriter, status, code, subcode int, message string) {
	WriteJSON(w, status, map[string]any{
		"error": map[string]any{
			"message":       message,
			"type":          "OAuthException",
			"code":          code,
			"error_subcode": subcode,
			"fbtrace_id":    "trace-test",
		},
	})
}
