// ABOUTME: Orchestrator owns the pipeline state machine and the regeneration loop
// ABOUTME: Sole mutator of session state; commits atomically at Done, single-flight per session
package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
	"github.com/harper/chef-pipeline/internal/session"
	"github.com/harper/chef-pipeline/internal/util"
)

// Stage is the orchestrator's position in the pipeline state machine
type Stage string

const (
	StageStart       Stage = "start"
	StageClassified  Stage = "classified"
	StageEnriched    Stage = "enriched"
	StageRouted      Stage = "routed"
	StageSynthesized Stage = "synthesized"
	StageValidated   Stage = "validated"
	StageDone        Stage = "done"
)

// ChunkSink receives incremental text from the active synthesis attempt.
// DiscardAttempt tells the sink that a previously streamed attempt failed
// validation and its chunks must not be delivered.
type ChunkSink interface {
	Chunk(attempt int, text string)
	DiscardAttempt(attempt int)
}

// Orchestrator sequences the pipeline stages for each request
type Orchestrator struct {
	store       session.Store
	classifier  *Classifier
	enricher    *Enricher
	router      *Router
	synthesizer *Synthesizer
	validator   *Validator
	formatter   *Formatter
	profile     *persona.Profile
	maxAttempts int
	retryDelay  time.Duration
	logger      *zap.Logger

	// Optional starting parameters for brand-new sessions
	defaultPersona *models.PersonaParameters

	// One mutex per session ID enforces single-flight: a second request
	// for the same session queues behind the first
	sessionLocks sync.Map
}

// NewOrchestrator wires the pipeline components together
func NewOrchestrator(store session.Store, classifier *Classifier, enricher *Enricher, router *Router, synthesizer *Synthesizer, validator *Validator, formatter *Formatter, profile *persona.Profile, maxAttempts int, retryDelay time.Duration, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		store:       store,
		classifier:  classifier,
		enricher:    enricher,
		router:      router,
		synthesizer: synthesizer,
		validator:   validator,
		formatter:   formatter,
		profile:     profile,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		logger:      logger,
	}
}

// runState is the orchestrator's working state for one request. It lives
// for the duration of the run and is never shared across requests.
type runState struct {
	stage      Stage
	requestID  string
	sessionID  string
	userText   string
	startedAt  time.Time
	attempt    int
	session    *models.Session
	cls        models.Classification
	enrichment Enrichment
	routing    models.RoutingDecision
	candidate  string
	synthErr   error
	report     *models.QualityReport
	status     models.Status
	diagnostic string
}

// SetDefaultPersona overrides the parameters new sessions start with
func (o *Orchestrator) SetDefaultPersona(p models.PersonaParameters) {
	p.Clamp()
	o.defaultPersona = &p
}

// Process runs the full pipeline for one user message. It always returns
// exactly one envelope; failures surface only through the status field.
func (o *Orchestrator) Process(ctx context.Context, sessionID, userText string) *models.ResponseEnvelope {
	return o.run(ctx, sessionID, userText, nil)
}

// ProcessStream runs the pipeline while forwarding the active attempt's
// chunks to the sink. Discarded attempts are signalled before the next
// attempt begins; the terminal envelope always follows.
func (o *Orchestrator) ProcessStream(ctx context.Context, sessionID, userText string, sink ChunkSink) *models.ResponseEnvelope {
	return o.run(ctx, sessionID, userText, sink)
}

func (o *Orchestrator) run(ctx context.Context, sessionID, userText string, sink ChunkSink) *models.ResponseEnvelope {
	lock := o.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	rs := &runState{
		stage:     StageStart,
		requestID: uuid.New().String(),
		sessionID: sessionID,
		userText:  userText,
		startedAt: time.Now(),
		status:    models.StatusOK,
	}

	o.logger.Debug("pipeline run starting",
		zap.String("request_id", rs.requestID),
		zap.String("session_id", sessionID))

	for rs.stage != StageDone {
		switch rs.stage {
		case StageStart:
			o.stepClassify(ctx, rs)
		case StageClassified:
			o.stepEnrich(rs)
		case StageEnriched:
			o.stepRoute(rs)
		case StageRouted:
			o.stepSynthesize(ctx, rs, sink)
		case StageSynthesized:
			o.stepValidate(rs)
		case StageValidated:
			o.stepDecide(ctx, rs, sink)
		}
	}

	envelope := o.finalize(ctx, rs)

	o.logger.Info("pipeline run complete",
		zap.String("request_id", rs.requestID),
		zap.String("session_id", sessionID),
		zap.String("status", string(envelope.Status)),
		zap.String("path", string(envelope.Routing.Path)),
		zap.Int("attempts", envelope.Attempts),
		zap.Duration("elapsed", envelope.Elapsed))

	return envelope
}

// stepClassify loads the session and classifies the input. A store
// failure is the one request-fatal case: persona context cannot be
// established, so no synthesis is attempted.
func (o *Orchestrator) stepClassify(ctx context.Context, rs *runState) {
	sess, err := o.store.Get(ctx, rs.sessionID)
	if err != nil {
		o.logger.Warn("session store unavailable",
			zap.String("session_id", rs.sessionID), zap.Error(err))
		rs.status = models.StatusError
		rs.diagnostic = models.ErrSessionUnavailable.Error()
		rs.candidate = o.profile.FallbackText
		rs.stage = StageDone
		return
	}
	if sess == nil {
		sess = models.NewSession(rs.sessionID)
		if o.defaultPersona != nil {
			sess.Persona = *o.defaultPersona
			sess.Persona.LastUpdated = time.Now().UTC()
		}
	}
	rs.session = sess
	rs.cls = o.classifier.Classify(rs.userText)
	rs.stage = StageClassified
}

func (o *Orchestrator) stepEnrich(rs *runState) {
	rs.enrichment = o.enricher.Enrich(rs.session, rs.userText, rs.cls)
	rs.stage = StageEnriched
}

// stepRoute applies the decision table. The error path skips synthesis
// entirely: no generation call is made for unusable input.
func (o *Orchestrator) stepRoute(rs *runState) {
	rs.routing = o.router.Route(&rs.enrichment.Context)
	if rs.routing.Path == models.PathError {
		rs.status = models.StatusError
		rs.diagnostic = models.ErrClassificationDegraded.Error()
		rs.candidate = o.profile.FallbackText
		rs.stage = StageDone
		return
	}
	rs.stage = StageRouted
}

// stepSynthesize consumes one attempt. A timeout or collaborator error
// is not fatal: the fallback text becomes this attempt's candidate and
// flows through validation like any other, per the regeneration
// controller's normal failure path.
func (o *Orchestrator) stepSynthesize(ctx context.Context, rs *runState, sink ChunkSink) {
	rs.attempt++
	rs.synthErr = nil

	var onChunk func(string)
	if sink != nil {
		attempt := rs.attempt
		onChunk = func(text string) { sink.Chunk(attempt, text) }
	}

	text, err := o.synthesizer.Synthesize(ctx, rs.routing, &rs.enrichment.Context, rs.attempt, onChunk)
	if err != nil {
		o.logger.Warn("synthesis attempt failed",
			zap.String("request_id", rs.requestID),
			zap.Int("attempt", rs.attempt),
			zap.Error(err))
		rs.synthErr = err
		rs.diagnostic = err.Error()
		rs.candidate = o.profile.FallbackText
		if sink != nil {
			// Whatever partial chunks escaped before the failure are void
			sink.DiscardAttempt(rs.attempt)
		}
	} else {
		rs.candidate = text
	}
	rs.stage = StageSynthesized
}

func (o *Orchestrator) stepValidate(rs *runState) {
	rs.report = o.validator.Validate(rs.candidate, &rs.enrichment.Context, rs.attempt)
	rs.stage = StageValidated
}

// stepDecide is the quality gate: pass goes forward, fail takes the
// back-edge to synthesis while attempts remain
func (o *Orchestrator) stepDecide(ctx context.Context, rs *runState, sink ChunkSink) {
	if rs.report.Passed {
		rs.status = models.StatusOK
		rs.stage = StageDone
		return
	}

	if rs.attempt < o.maxAttempts {
		if sink != nil && rs.synthErr == nil {
			sink.DiscardAttempt(rs.attempt)
		}
		if rs.synthErr != nil && o.retryDelay > 0 {
			o.waitBackoff(ctx, rs.attempt)
		}
		rs.stage = StageRouted
		return
	}

	// Retries exhausted: ship the last candidate, flagged degraded
	rs.status = models.StatusDegraded
	if rs.diagnostic == "" {
		rs.diagnostic = models.ErrQualityGateExhausted.Error()
	}
	rs.stage = StageDone
}

// waitBackoff sleeps between attempts after a transient synthesis
// failure, honoring cancellation
func (o *Orchestrator) waitBackoff(ctx context.Context, attempt int) {
	timer := time.NewTimer(util.CalculateBackoff(o.retryDelay, attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// finalize builds the envelope and commits session state. The commit is
// the pipeline's only side effect on the session store and happens once,
// at Done.
func (o *Orchestrator) finalize(ctx context.Context, rs *runState) *models.ResponseEnvelope {
	mood := models.MoodEnthusiastic
	if rs.session != nil {
		mood = rs.session.Persona.CurrentMood
	}
	if rs.status != models.StatusError {
		mood = rs.enrichment.ProposedMood
	}

	envelope := o.formatter.Format(FormatInput{
		RequestID:  rs.requestID,
		SessionID:  rs.sessionID,
		Text:       rs.candidate,
		Status:     rs.status,
		Routing:    rs.routing,
		Quality:    rs.report,
		Mood:       mood,
		Attempts:   rs.attempt,
		Elapsed:    time.Since(rs.startedAt),
		Diagnostic: rs.diagnostic,
	})

	o.commit(ctx, rs, envelope)
	return envelope
}

// commit writes the turn pair and the mood transition back to the store.
// Skipped when the store was unreachable; a failed write is logged and
// the already-built envelope stands.
func (o *Orchestrator) commit(ctx context.Context, rs *runState, envelope *models.ResponseEnvelope) {
	if rs.session == nil {
		return
	}

	userTurn, err := models.NewTurn(models.RoleUser, rs.userText)
	if err == nil {
		rs.session.AppendTurn(*userTurn)
	}
	chefTurn, err := models.NewTurn(models.RoleChef, envelope.Text)
	if err == nil {
		rs.session.AppendTurn(*chefTurn)
	}

	if rs.status != models.StatusError {
		rs.session.Persona.CurrentMood = rs.enrichment.ProposedMood
		rs.session.Persona.LastUpdated = time.Now().UTC()
	}
	rs.session.Persona.Clamp()

	if err := o.store.Put(ctx, rs.session); err != nil {
		o.logger.Warn("session commit failed",
			zap.String("session_id", rs.sessionID), zap.Error(err))
	}
}

func (o *Orchestrator) lockFor(sessionID string) *sync.Mutex {
	v, _ := o.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// SessionSnapshot returns a copy of the stored session for read-only
// surfaces like the persona status endpoint
func (o *Orchestrator) SessionSnapshot(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := o.store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.ErrSessionUnavailable
	}
	return sess, nil
}

// Profile exposes the read-only persona profile
func (o *Orchestrator) Profile() *persona.Profile {
	return o.profile
}
