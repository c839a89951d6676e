package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/changmai/sabang-qoo10-rincos/internal/config"
	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/service"
	"github.com/changmai/sabang-qoo10-rincos/internal/fileio"
	"github.com/changmai/sabang-qoo10-rincos/internal/middleware"
)

const (
	drFilename     = "DR_final_result.xlsx"
	ordersFilename = "S_updated.xlsx"
)

// Env — зависимости обработчиков. Каталог по умолчанию грузит хост при
// старте и передаёт сюда; CatalogErr хранит причину, если загрузка упала.
type Env struct {
	Cfg        config.Config
	Layout     model.Layout
	Catalog    *service.Catalog
	CatalogErr error
	Logger     zerolog.Logger
}

// DR возвращает http.HandlerFunc, который отдаёт DR_final_result.xlsx.
func DR(env Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, log, ok := run(env, w, r)
		if !ok {
			return
		}
		var buf bytes.Buffer
		t := service.DRTable(res.DR, env.Layout.DR)
		if err := fileio.WriteXLSX(&buf, t, fileio.WriteOptions{NumericColumns: []string{env.Layout.DR.Quantity}}); err != nil {
			log.Error().Err(err).Msg("write dr")
			writeError(w, err)
			return
		}
		if err := writeAttachment(w, drFilename, buf.Bytes()); err != nil {
			log.Error().Err(err).Msg("send dr")
		}
	}
}

// Orders отдаёт обогащённый лист заказов.
func Orders(env Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, log, ok := run(env, w, r)
		if !ok {
			return
		}
		var buf bytes.Buffer
		opt := fileio.WriteOptions{NumericColumns: []string{env.Layout.Orders.ItemPcs, env.Layout.Orders.UnitPrice}}
		if err := fileio.WriteXLSX(&buf, res.Orders, opt); err != nil {
			log.Error().Err(err).Msg("write orders")
			writeError(w, err)
			return
		}
		if err := writeAttachment(w, ordersFilename, buf.Bytes()); err != nil {
			log.Error().Err(err).Msg("send orders")
		}
	}
}

// Preview returns the head of the DR plus run stats as JSON.
func Preview(env Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, log, ok := run(env, w, r)
		if !ok {
			return
		}
		n := atoi(r.FormValue("preview_rows"), env.Cfg.PreviewRows)
		n = min(max(n, 0), len(res.DR))
		p := model.Preview{
			Catalog: catalogKind(r),
			Stats:   res.Stats,
			DR:      res.DR[:n],
		}
		if err := writeJSON(w, http.StatusOK, p); err != nil {
			log.Error().Err(err).Msg("write json")
		}
	}
}

// CatalogInfo describes the default catalog the host loaded.
func CatalogInfo(env Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"source": env.Cfg.CatalogFile, "loaded": env.Catalog != nil}
		if env.Catalog != nil {
			body["entries"] = env.Catalog.Len()
		}
		if env.CatalogErr != nil {
			body["error"] = env.CatalogErr.Error()
		}
		_ = writeJSON(w, http.StatusOK, body)
	}
}

// run — общий путь: разбор формы, выбор каталога, чтение S, прогон.
// При ошибке ответ уже записан и ok == false.
func run(env Env, w http.ResponseWriter, r *http.Request) (*service.Result, zerolog.Logger, bool) {
	start := time.Now()
	log := env.Logger
	if rid := middleware.GetRequestID(r); rid != "" {
		log = env.Logger.With().Str("rid", rid).Logger()
	}
	fail := func(err error) (*service.Result, zerolog.Logger, bool) {
		log.Warn().Err(err).Msg("run rejected")
		writeError(w, err)
		return nil, log, false
	}

	if err := r.ParseMultipartForm(int64(env.Cfg.MaxUploadMB) << 20); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return fail(fmt.Errorf("%w: expected multipart/form-data with an %q file", model.ErrMissingInput, "orders"))
		}
		return fail(fmt.Errorf("%w: bad multipart form: %w", model.ErrMalformedInput, err))
	}
	defer r.MultipartForm.RemoveAll()

	cat, err := pickCatalog(env, r)
	if err != nil {
		return fail(err)
	}
	orders, err := readUpload(r, "orders", atoi(r.FormValue("orders_header_row"), 1))
	if err != nil {
		return fail(err)
	}

	res, err := service.Run(orders, cat, env.Layout)
	if err != nil {
		return fail(err)
	}

	log.Info().
		Int("orders", res.Stats.OrderRows).
		Int("catalog", res.Stats.CatalogRows).
		Int("matched", res.Stats.Matched).
		Int("unmatched", res.Stats.Unmatched).
		Int("placeholders", res.Stats.Placeholders).
		Dur("elapsed", time.Since(start)).
		Msg("dr run done")
	if len(res.Stats.UnmatchedNames) > 0 {
		log.Debug().Strs("unmatched_names", res.Stats.UnmatchedNames).Msg("no catalog match")
	}
	return res, log, true
}

// pickCatalog: загруженный каталог побеждает, если use_default_catalog не
// выставлен явно в true; без загрузки нужен каталог по умолчанию.
func pickCatalog(env Env, r *http.Request) (*service.Catalog, error) {
	useDefault := r.FormValue("use_default_catalog")
	if hasFile(r, "catalog") && !toBool(useDefault, false) {
		t, err := readUpload(r, "catalog", atoi(r.FormValue("catalog_header_row"), 1))
		if err != nil {
			return nil, err
		}
		return service.NewCatalog(t, env.Layout.Catalog, "upload")
	}
	if !toBool(useDefault, true) {
		return nil, &model.MissingFileError{Field: "catalog"}
	}
	if env.Catalog == nil {
		if env.CatalogErr != nil {
			return nil, env.CatalogErr
		}
		return nil, fmt.Errorf("%w: no default catalog configured", model.ErrCatalogUnavailable)
	}
	return env.Catalog, nil
}

func hasFile(r *http.Request, field string) bool {
	if r.MultipartForm == nil {
		return false
	}
	return len(r.MultipartForm.File[field]) > 0
}

func catalogKind(r *http.Request) string {
	if hasFile(r, "catalog") && !toBool(r.FormValue("use_default_catalog"), false) {
		return "upload"
	}
	return "default"
}
