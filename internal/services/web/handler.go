package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/accountform/internal/platform/errors"
	errori18n "github.com/louisbranch/accountform/internal/platform/errors/i18n"
	"github.com/louisbranch/accountform/internal/platform/i18n/catalog"
	"github.com/louisbranch/accountform/internal/services/shared/htmx"
	"github.com/louisbranch/accountform/internal/services/web/platform/flash"
	"github.com/louisbranch/accountform/internal/services/web/platform/httpx"
	"github.com/louisbranch/accountform/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/accountform/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/accountform/internal/services/web/routepath"
	"github.com/louisbranch/accountform/internal/services/web/templates"
	"github.com/louisbranch/accountform/internal/signup/schema"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

const tracerName = "github.com/louisbranch/accountform/internal/services/web"

var errSessionNotFound = apperrors.New(apperrors.CodeSessionNotFound, "form session not found")

type handler struct {
	locale  string
	policy  requestmeta.SchemePolicy
	schema  *schema.Schema
	sink    wizard.Sink
	forms   *formStore
	cookies *sessioncookie.Codec
	tracer  trace.Tracer
}

// NewHandler assembles the signup routes.
func NewHandler(config Config) (http.Handler, error) {
	h, err := newHandler(config)
	if err != nil {
		return nil, err
	}
	return h.routes(), nil
}

func newHandler(config Config) (*handler, error) {
	config = config.withDefaults()
	sch, err := schema.New(schema.WithLocale(config.Locale))
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	cookies, err := sessioncookie.NewCodec(config.SessionSecret, config.SessionTTL, policy)
	if err != nil {
		return nil, fmt.Errorf("build session cookie codec: %w", err)
	}
	return &handler{
		locale:  config.Locale,
		policy:  policy,
		schema:  sch,
		sink:    config.Sink,
		forms:   newFormStore(config.SessionTTL),
		cookies: cookies,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

func (h *handler) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(routepath.Health, h.handleHealth).Methods(http.MethodGet)
	r.Handle(routepath.Root, http.RedirectHandler(routepath.Signup, http.StatusFound)).Methods(http.MethodGet)
	r.HandleFunc(routepath.Signup, h.handleSignup).Methods(http.MethodGet)
	r.HandleFunc(routepath.SignupField, h.handleFieldUpdate).Methods(http.MethodPost)
	r.HandleFunc(routepath.SignupNext, h.handleNext).Methods(http.MethodPost)
	r.HandleFunc(routepath.SignupBack, h.handleBack).Methods(http.MethodPost)
	r.HandleFunc(routepath.SignupSubmit, h.handleSubmit).Methods(http.MethodPost)

	return httpx.Chain(r,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.SameOrigin(h.policy),
	)
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Printf("write health response: %v", err)
	}
}

// newSession builds a wizard session bound to notifier.
func (h *handler) newSession(notifier wizard.Notifier) *wizard.Session {
	return wizard.New(
		wizard.WithSchema(h.schema),
		wizard.WithLocale(h.locale),
		wizard.WithNotifier(notifier),
		wizard.WithSink(h.sink),
	)
}

// lookup resolves the form addressed by the request cookie.
func (h *handler) lookup(r *http.Request) (string, *formEntry, bool) {
	id, ok := h.cookies.Read(r)
	if !ok {
		return "", nil, false
	}
	entry := h.forms.get(id)
	if entry == nil {
		return "", nil, false
	}
	return id, entry, true
}

func (h *handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	_, entry, ok := h.lookup(r)
	if ok {
		entry.mu.Lock()
		if entry.session.Completed() {
			entry.mu.Unlock()
			ok = false
		}
	}
	if !ok {
		var id string
		id, entry = h.forms.create(h.newSession)
		if err := h.cookies.Write(w, r, id); err != nil {
			httpx.WriteError(w, h.locale, err)
			return
		}
		entry.mu.Lock()
	}
	defer entry.mu.Unlock()

	var toasts []templates.Toast
	if notice, ok := flash.ReadAndClearWithPolicy(w, r, h.policy); ok {
		toasts = append(toasts, toastFromNotice(notice))
	}
	for _, n := range entry.drain() {
		toasts = append(toasts, toastFromNotification(n))
	}
	h.renderSignup(w, r, entry.session, toasts)
}

func (h *handler) handleFieldUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "signup.field_update")
	defer span.End()

	field, ok := schema.ParseField(mux.Vars(r)[routepath.FieldVariable])
	if !ok {
		h.fail(w, span, wizard.ErrUnknownField)
		return
	}
	span.SetAttributes(attribute.String("signup.field", field.String()))

	_, entry, ok := h.lookup(r.WithContext(ctx))
	if !ok {
		h.fail(w, span, errSessionNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.session.Completed() {
		h.fail(w, span, errSessionNotFound)
		return
	}
	if err := entry.session.SetField(field, r.PostForm.Get(field.String())); err != nil {
		h.fail(w, span, err)
		return
	}
	state := entry.session.Field(field)
	span.SetAttributes(attribute.Bool("signup.field_error_shown", state.Error != ""))
	htmx.RenderFragment(w, r, templates.FieldError(field.String(), state.Error))
}

func (h *handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.withForm(w, r, "signup.advance", func(ctx context.Context, span trace.Span, id string, entry *formEntry) {
		if err := applyPostedFields(entry.session, r, schema.IdentityFields()); err != nil {
			h.fail(w, span, err)
			return
		}
		advanced := entry.session.Advance()
		span.SetAttributes(attribute.Bool("signup.advanced", advanced))
		h.respond(w, r, entry)
	})
}

func (h *handler) handleBack(w http.ResponseWriter, r *http.Request) {
	h.withForm(w, r, "signup.retreat", func(_ context.Context, _ trace.Span, _ string, entry *formEntry) {
		entry.session.Retreat()
		h.respond(w, r, entry)
	})
}

func (h *handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	h.withForm(w, r, "signup.submit", func(ctx context.Context, span trace.Span, id string, entry *formEntry) {
		if err := applyPostedFields(entry.session, r, schema.CredentialFields()); err != nil {
			h.fail(w, span, err)
			return
		}
		err := entry.session.SubmitForm(ctx)
		span.SetAttributes(attribute.String("signup.outcome", submitOutcome(err)))
		switch {
		case err == nil:
			values := entry.session.Values()
			h.forms.delete(id)
			h.cookies.Clear(w, r)
			log.Printf("form %s accepted", id)
			h.renderAccepted(w, r, values)
		case errors.Is(err, wizard.ErrPasswordMismatch), errors.Is(err, wizard.ErrFieldsInvalid):
			h.respond(w, r, entry)
		default:
			h.fail(w, span, err)
		}
	})
}

// withForm resolves the form, locks it and runs op inside a span. A missing
// or already accepted form sends the browser back to a fresh one with a
// warning.
func (h *handler) withForm(w http.ResponseWriter, r *http.Request, spanName string, op func(context.Context, trace.Span, string, *formEntry)) {
	ctx, span := h.tracer.Start(r.Context(), spanName)
	defer span.End()
	r = r.WithContext(ctx)

	id, entry, ok := h.lookup(r)
	if !ok {
		h.restart(w, r, span)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// A concurrent request may have completed the form while this one
	// waited for the lock.
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.session.Completed() {
		h.restart(w, r, span)
		return
	}
	span.SetAttributes(attribute.String("signup.step_before", entry.session.Step().String()))
	op(ctx, span, id, entry)
	span.SetAttributes(attribute.String("signup.step_after", entry.session.Step().String()))
}

// restart redirects to a fresh form with a session warning.
func (h *handler) restart(w http.ResponseWriter, r *http.Request, span trace.Span) {
	span.SetStatus(codes.Error, "form session not found")
	flash.WriteWithPolicy(w, r, flash.Notice{
		Kind:  flash.KindWarning,
		Title: errori18n.GetCatalog(h.locale).Format(errori18n.CodeSessionNotFound, nil),
	}, h.policy)
	httpx.WriteRedirect(w, r, routepath.Signup)
}

// respond renders the card in place for htmx and redirects plain posts,
// carrying queued notifications along. Callers hold entry.mu.
func (h *handler) respond(w http.ResponseWriter, r *http.Request, entry *formEntry) {
	notifications := entry.drain()
	if htmx.IsHTMXRequest(r) {
		toasts := make([]templates.Toast, 0, len(notifications))
		for _, n := range notifications {
			toasts = append(toasts, toastFromNotification(n))
		}
		h.renderSignup(w, r, entry.session, toasts)
		return
	}
	if len(notifications) > 0 {
		last := notifications[len(notifications)-1]
		flash.WriteWithPolicy(w, r, noticeFromNotification(last), h.policy)
	}
	httpx.WriteRedirect(w, r, routepath.Signup)
}

func (h *handler) fail(w http.ResponseWriter, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	httpx.WriteError(w, h.locale, err)
}

func (h *handler) pageContext() templates.PageContext {
	loc := catalog.Printer(h.locale)
	return templates.PageContext{
		Lang:  h.locale,
		Loc:   loc,
		Title: templates.T(loc, "signup.title"),
	}
}

func (h *handler) renderSignup(w http.ResponseWriter, r *http.Request, sess *wizard.Session, toasts []templates.Toast) {
	page := h.pageContext()
	params := signupParams(page.Loc, sess)
	if len(toasts) > 0 {
		params.Toast = &toasts[len(toasts)-1]
	}
	htmx.RenderPage(w, r, templates.SignupPage(page, params), htmx.TitleTag(page.Title))
}

func (h *handler) renderAccepted(w http.ResponseWriter, r *http.Request, values schema.Values) {
	page := h.pageContext()
	htmx.RenderPage(w, r, templates.AcceptedPage(page, summaryRows(page.Loc, values)), htmx.TitleTag(page.Title))
}

// applyPostedFields copies the posted values of fields into sess. Fields
// absent from the post are left alone.
func applyPostedFields(sess *wizard.Session, r *http.Request, fields []schema.Field) error {
	for _, field := range fields {
		values, ok := r.PostForm[field.String()]
		if !ok || len(values) == 0 {
			continue
		}
		if err := sess.SetField(field, values[0]); err != nil {
			return err
		}
	}
	return nil
}

func submitOutcome(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, wizard.ErrPasswordMismatch):
		return "password_mismatch"
	case errors.Is(err, wizard.ErrFieldsInvalid):
		return "fields_invalid"
	default:
		return strings.ToLower(string(apperrors.CodeOf(err)))
	}
}
