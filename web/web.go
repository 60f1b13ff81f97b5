/*
 * web.go, part of chemkin.
 *
 * Copyright 2017 The chemkin authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package web is the HTTP front end of the kinetics engine. It exposes
//session-scoped operations: POST /session uploads a reaction XML document
//and returns a session id and the species list; POST /rates/{sid} evaluates
//rate coefficients, progress rates and production rates at a temperature and
//concentration vector; POST /plots/{sid}/{tlow}/{thigh} returns
//base64-encoded rate plots over a temperature range. No kinetics happens
//here; every handler re-reads the session's document and calls the engine.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chemkinetics/chemkin"
	"github.com/chemkinetics/chemkin/kinplot"
	"github.com/chemkinetics/chemkin/nasa"
	"github.com/chemkinetics/chemkin/parser"
	"github.com/chemkinetics/chemkin/sweep"
)

const sweepPoints = 100

// Server serves the kinetics API. Each session is a directory under Root
// holding the uploaded document and a coefficient database built from it, so
// concurrent sessions never share mutable state.
type Server struct {
	Root   string //session storage root
	Static string //static file directory; empty disables static serving
	eq     chemkin.EquilibriumEvaluator
	log    *logrus.Logger
	mux    *http.ServeMux
}

// NewServer returns a Server storing sessions under root, serving static
// files from static (if non-empty) and using eq for reversible reactions.
// A nil logger falls back to the logrus standard logger.
func NewServer(root, static string, eq chemkin.EquilibriumEvaluator, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{Root: root, Static: static, eq: eq, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /session", s.handleSession)
	s.mux.HandleFunc("POST /rates/{sid}", s.handleRates)
	s.mux.HandleFunc("POST /plots/{sid}/{tlow}/{thigh}", s.handlePlots)
	if static != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(static)))
	}
	return s
}

// Handler returns the server's handler, with request logging.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.mux.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("request")
	})
}

// ListenAndServe runs the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.WithField("addr", addr).Info("chemkin web server listening")
	return http.ListenAndServe(addr, s.Handler())
}

type sessionRequest struct {
	Data string `json:"data"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, fmt.Errorf("bad request body: %v", err))
		return
	}
	sid, err := newSessionID()
	if err != nil {
		s.fail(w, err)
		return
	}
	dir := filepath.Join(s.Root, sid)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		s.fail(w, err)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, "data.xml"), []byte(req.Data), 0o640); err != nil {
		s.fail(w, err)
		return
	}
	sys, err := s.openSession(sid)
	if err != nil {
		os.RemoveAll(dir)
		s.fail(w, fmt.Errorf("Failed to parse given xml file (%v)", err))
		return
	}
	s.ok(w, map[string]interface{}{"id": sid, "species": sys.Species})
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	sys, err := s.openSession(r.PathValue("sid"))
	if err != nil {
		s.fail(w, err)
		return
	}
	concs, T, err := decodeConcs(r, sys)
	if err != nil {
		s.fail(w, err)
		return
	}
	progress, err := sys.ProgressRates(concs, T)
	if err != nil {
		s.fail(w, fmt.Errorf("Failed to get rates (%v)", err))
		return
	}
	production, err := sys.ProductionRates(progress)
	if err != nil {
		s.fail(w, fmt.Errorf("Failed to get rates (%v)", err))
		return
	}
	ks, err := sys.RateCoeffs(T)
	if err != nil {
		s.fail(w, fmt.Errorf("Failed to get rates (%v)", err))
		return
	}
	s.ok(w, map[string]interface{}{
		"progress_rates": progress,
		"reaction_rates": production,
		"ks":             ks,
		"species":        sys.Species,
	})
}

func (s *Server) handlePlots(w http.ResponseWriter, r *http.Request) {
	sys, err := s.openSession(r.PathValue("sid"))
	if err != nil {
		s.fail(w, err)
		return
	}
	tLow, err := strconv.ParseFloat(r.PathValue("tlow"), 64)
	if err != nil {
		s.fail(w, fmt.Errorf("bad tlow: %v", err))
		return
	}
	tHigh, err := strconv.ParseFloat(r.PathValue("thigh"), 64)
	if err != nil {
		s.fail(w, fmt.Errorf("bad thigh: %v", err))
		return
	}
	concs, _, err := decodeConcs(r, sys)
	if err != nil {
		s.fail(w, err)
		return
	}
	sw, err := sweep.Run(sys, concs, tLow, tHigh, sweepPoints)
	if err != nil {
		s.fail(w, fmt.Errorf("Failed to get plots (%v)", err))
		return
	}
	progressPlot, err := kinplot.ProgressRates(sw, "Progress rates")
	if err != nil {
		s.fail(w, err)
		return
	}
	productionPlot, err := kinplot.ProductionRates(sw, "Reaction rates")
	if err != nil {
		s.fail(w, err)
		return
	}
	progressPNG, err := kinplot.EncodePNG(progressPlot, 600, 400)
	if err != nil {
		s.fail(w, err)
		return
	}
	productionPNG, err := kinplot.EncodePNG(productionPlot, 600, 400)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, map[string]interface{}{
		"progress_rates": progressPNG,
		"reaction_rates": productionPNG,
	})
}

//openSession rebuilds the reaction system of a session from its stored
//document, loading the session's own coefficient database on first use.
func (s *Server) openSession(sid string) (*chemkin.ReactionSystem, error) {
	if !validSessionID(sid) {
		return nil, fmt.Errorf("invalid session id")
	}
	dir := filepath.Join(s.Root, sid)
	m, err := parser.ParseFile(filepath.Join(dir, "data.xml"))
	if err != nil {
		return nil, err
	}
	store, err := nasa.Open(filepath.Join(dir, "coeffs.db"))
	if err != nil {
		return nil, err
	}
	defer store.Close()
	if len(m.SpeciesData) > 0 {
		if err := store.Load(m.SpeciesData); err != nil {
			return nil, err
		}
	}
	return m.System(store, s.eq)
}

//decodeConcs reads a JSON object mapping each species name to its
//concentration, plus the temperature under the key "_temp".
func decodeConcs(r *http.Request, sys *chemkin.ReactionSystem) ([]float64, float64, error) {
	var body map[string]float64
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, 0, fmt.Errorf("bad request body: %v", err)
	}
	T, ok := body["_temp"]
	if !ok {
		return nil, 0, fmt.Errorf("missing _temp")
	}
	concs := make([]float64, sys.NSpecies())
	for i, sp := range sys.Species {
		c, ok := body[sp]
		if !ok {
			return nil, 0, fmt.Errorf("missing concentration for %s", sp)
		}
		concs[i] = c
	}
	return concs, T, nil
}

func (s *Server) ok(w http.ResponseWriter, fields map[string]interface{}) {
	fields["status"] = "success"
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fields)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.log.WithError(err).Warn("request failed")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "failed",
		"reason": err.Error(),
	})
}

func newSessionID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

func validSessionID(sid string) bool {
	if len(sid) != 32 {
		return false
	}
	_, err := hex.DecodeString(sid)
	return err == nil
}
