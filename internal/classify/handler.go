package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/httputil"
	"github.com/go-sod/gesture/internal/logging"
	"github.com/go-sod/gesture/internal/predictor"
)

const maxBodyBytes = 4 * 1024 * 1024

type sample struct {
	ID       string    `json:"id"`
	Readings []float64 `json:"readings"`
}

type request struct {
	Samples []sample `json:"samples"`
}

type result struct {
	ID          string                `json:"id"`
	Confidences predictor.Confidences `json:"confidences,omitempty"`
	Top         int                   `json:"top"`
	Label       string                `json:"label,omitempty"`
	Score       float64               `json:"score"`
	Error       string                `json:"error,omitempty"`
}

type response struct {
	Results []result `json:"results"`
}

func NewHandler(cfg *Config, classifier predictor.Classifier, lookup gesture.Lookup) (http.Handler, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier instance is not created")
	}
	return &handler{
		cfg:        cfg,
		classifier: classifier,
		lookup:     lookup,
	}, nil
}

type handler struct {
	cfg        *Config
	classifier predictor.Classifier
	lookup     gesture.Lookup
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		logger.Debug(fmt.Sprintf(`{"error": "method %v is not allowed"}`, r.Method))
		_, _ = fmt.Fprintf(w, `{"error": "method %v is not allowed"}`, r.Method)
		return
	}

	if t := r.Header.Get("content-type"); len(t) < 16 || t[:16] != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		logger.Debug(fmt.Sprintf(`{"error": "%v"}`, "content-type is not application/json"))
		_, _ = fmt.Fprintf(w, `{"error": "%v"}`, "content-type is not application/json")
		return
	}

	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		httputil.DecodeErr(ctx, w, err)
		return
	}

	if len(req.Samples) == 0 {
		httputil.RespBadRequest(ctx, w, `{"error": "samples must not be empty"}`)
		return
	}
	if len(req.Samples) > h.cfg.MaxSamples {
		httputil.RespBadRequest(ctx, w, `{"error": "too many samples, max allowed len is %d"}`, h.cfg.MaxSamples)
		return
	}

	results := make([]result, len(req.Samples))
	errGrp, grpCtx := errgroup.WithContext(ctx)
	if h.cfg.MaxConcurrency > 0 {
		errGrp.SetLimit(h.cfg.MaxConcurrency)
	}
	for i := range req.Samples {
		i := i
		errGrp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			// each goroutine owns results[i]
			results[i] = h.classify(req.Samples[i])
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "classify processing error, %v"}`, err)
		return
	}

	httputil.RespJSON(ctx, w, http.StatusOK, response{Results: results})
}

func (h *handler) classify(s sample) result {
	res := result{ID: s.ID, Top: -1}
	confidences, err := h.classifier.Classify(s.Readings)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Confidences = confidences
	res.Top, res.Score = gesture.Top(confidences)
	res.Label = gesture.LabelFor(h.lookup, res.Top)
	return res
}
