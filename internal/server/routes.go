package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/scramblectl/internal/observability"
	"github.com/danmuck/scramblectl/internal/scramble"
	"github.com/danmuck/scramblectl/internal/script"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RunRequest is the body of /scramble and /unscramble.
type RunRequest struct {
	Program string `json:"program"`
	Input   string `json:"input"`
	Trace   bool   `json:"trace"`
}

// RunResponse is a successful run.
type RunResponse struct {
	ID     string      `json:"id"`
	Mode   string      `json:"mode"`
	Output string      `json:"output"`
	Steps  int         `json:"steps"`
	Trace  []TraceStep `json:"trace,omitempty"`
}

// TraceStep is one executed operation in a traced run.
type TraceStep struct {
	Index  int    `json:"index"`
	Op     string `json:"op"`
	Before string `json:"before"`
	After  string `json:"after"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/scramble", s.runHandler(scramble.Forward))
	s.router.POST("/unscramble", s.runHandler(scramble.Backward))
}

func (s *Server) runHandler(mode scramble.RunMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := s.newID()
		c.Set(observability.RunIDKey, id)

		var req RunRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"id": id, "error": err.Error()})
			return
		}
		if n := countLines(req.Program); n > s.MaxProgramLines {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"id":    id,
				"error": "program too long",
				"lines": n,
				"limit": s.MaxProgramLines,
			})
			return
		}

		prog, err := script.ParseString(req.Program)
		if err != nil {
			body := gin.H{"id": id, "error": err.Error()}
			var lineErr *script.LineError
			if errors.As(err, &lineErr) {
				body["line"] = lineErr.Line
			}
			c.JSON(http.StatusBadRequest, body)
			return
		}

		buf := scramble.NewBuffer(req.Input)
		if err := buf.Validate(); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"id": id, "error": err.Error(), "kind": scramble.Kind(err)})
			return
		}

		resp := RunResponse{ID: id, Mode: mode.String(), Steps: len(prog)}
		runner := scramble.Executor{Strict: s.StrictInverse}
		if req.Trace {
			runner.Observer = func(step scramble.Step) {
				resp.Trace = append(resp.Trace, TraceStep{
					Index:  step.Index,
					Op:     step.Op.String(),
					Before: step.Before,
					After:  step.After,
				})
			}
		}

		out, err := runner.Run(mode, prog, buf)
		if err != nil {
			kind := scramble.Kind(err)
			observability.RecordRun(mode.String(), kind, len(prog))
			_ = c.Error(err)
			body := gin.H{"id": id, "error": err.Error(), "kind": kind}
			var stepErr *scramble.StepError
			if errors.As(err, &stepErr) {
				body["step"] = stepErr.Index
			}
			c.JSON(http.StatusUnprocessableEntity, body)
			return
		}

		observability.RecordRun(mode.String(), "ok", len(prog))
		resp.Output = out.String()
		c.JSON(http.StatusOK, resp)
	}
}

func countLines(program string) int {
	n := 0
	for _, line := range strings.Split(program, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			n++
		}
	}
	return n
}
