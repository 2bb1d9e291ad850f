package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jicksta/eigenrank"
	"github.com/jicksta/eigenrank/internal/config"
	"github.com/jicksta/eigenrank/internal/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Warn("invalid log_level; falling back to info", "log_level", cfg.LogLevel)
	}

	gin.SetMode(gin.ReleaseMode)
	server := newServer(cfg, log, prometheus.NewRegistry())
	log.Info("listening", "addr", cfg.Addr)
	if err := server.router().Run(cfg.Addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

type server struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry

	rankings   *prometheus.CounterVec
	iterations prometheus.Histogram
}

func newServer(cfg *config.Config, log *slog.Logger, registry *prometheus.Registry) *server {
	factory := promauto.With(registry)
	return &server{
		cfg:      cfg,
		log:      log,
		registry: registry,
		rankings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eigenrank",
			Name:      "rankings_total",
			Help:      "Ranking requests by the stage that ended them.",
		}, []string{"stage"}),
		iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "eigenrank",
			Name:      "power_iterations",
			Help:      "Power iteration steps per successful ranking.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
	}
}

type rankingResponse struct {
	ID         string               `json:"id"`
	Teams      []string             `json:"teams"`
	Standings  []eigenrank.Standing `json:"standings"`
	Eigenvalue float64              `json:"eigenvalue"`
	Iterations int                  `json:"iterations"`
	Converged  bool                 `json:"converged"`
	Groups     [][]string           `json:"groups"`
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/rankings", func(c *gin.Context) {
		postBody, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		id := uuid.NewString()
		ranker := eigenrank.NewRanker(s.cfg.RankerOptions(s.log)...)
		ranking, err := ranker.RankReader(id, bytes.NewReader(postBody))
		if err != nil {
			stage := "unknown"
			var stageErr *eigenrank.StageError
			if errors.As(err, &stageErr) {
				stage = stageErr.Stage
			}
			s.rankings.WithLabelValues(stage).Inc()
			s.log.Info("ranking rejected", "ranking", id, "error", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "stage": stage})
			return
		}

		s.rankings.WithLabelValues("done").Inc()
		s.iterations.Observe(float64(ranking.Eigen.Iterations))
		c.JSON(http.StatusOK, rankingResponse{
			ID:         ranking.ID,
			Teams:      ranking.Teams,
			Standings:  ranking.Standings(),
			Eigenvalue: ranking.Eigen.Value,
			Iterations: ranking.Eigen.Iterations,
			Converged:  ranking.Eigen.Converged,
			Groups:     ranking.Components,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return r
}
