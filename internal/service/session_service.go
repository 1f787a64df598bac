package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"voz-orientador-be/internal/constant"
	"voz-orientador-be/internal/dto"
	"voz-orientador-be/internal/model"
	"voz-orientador-be/internal/pkg/logger"
	"voz-orientador-be/internal/repository/memory"
	"voz-orientador-be/pkg/interview"
	"voz-orientador-be/pkg/speech"

	"github.com/go-playground/validator/v10"
)

// ISessionService drives the dialogue state machine. Welcome produces the
// connection-open greeting; HandleMessage consumes one inbound frame and
// returns at most one reply, plus whether the connection must close. A nil
// reply means the frame was malformed and the turn is skipped.
type ISessionService interface {
	Welcome(ctx context.Context, sessionID string) *dto.ServerReply
	HandleMessage(ctx context.Context, sessionID string, raw []byte) (*dto.ServerReply, bool)
	CloseSession(sessionID string)
}

type sessionService struct {
	indexService IIndexService
	sessionRepo  *memory.SessionRepository
	transcriber  speech.Transcriber
	synthesizer  speech.Synthesizer
	logger       logger.ILogger
	validate     *validator.Validate
}

func NewSessionService(
	indexService IIndexService,
	sessionRepo *memory.SessionRepository,
	transcriber speech.Transcriber,
	synthesizer speech.Synthesizer,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		indexService: indexService,
		sessionRepo:  sessionRepo,
		transcriber:  transcriber,
		synthesizer:  synthesizer,
		logger:       log,
		validate:     validator.New(),
	}
}

// Welcome registers a fresh idle state for the session and returns the
// greeting with its synthesized audio. Not counted as a dialogue turn.
func (s *sessionService) Welcome(ctx context.Context, sessionID string) *dto.ServerReply {
	s.sessionRepo.Save(sessionID, model.NewSessionState())
	return s.reply(ctx, constant.WelcomeText, "", constant.WelcomeText, false)
}

// CloseSession drops the per-connection state.
func (s *sessionService) CloseSession(sessionID string) {
	s.sessionRepo.Delete(sessionID)
}

func (s *sessionService) HandleMessage(ctx context.Context, sessionID string, raw []byte) (*dto.ServerReply, bool) {
	var msg dto.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.logger.Warn("Session", "Malformed message skipped", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		return nil, false
	}
	if err := s.validate.Struct(&msg); err != nil {
		s.logger.Warn("Session", "Invalid message skipped", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		return nil, false
	}

	if msg.Type == dto.MessageTypeCommand {
		return s.handleCommand(ctx, sessionID, &msg)
	}
	return s.handleAudio(ctx, sessionID, &msg)
}

// handleCommand serves out-of-band control commands. Reindexing does not
// consume a dialogue turn and leaves the session mode untouched.
func (s *sessionService) handleCommand(ctx context.Context, sessionID string, msg *dto.ClientMessage) (*dto.ServerReply, bool) {
	if msg.Value != dto.CommandReindex {
		s.logger.Warn("Session", "Unknown command skipped", map[string]interface{}{"session_id": sessionID, "value": msg.Value})
		return nil, false
	}
	if err := s.indexService.Rebuild(ctx); err != nil {
		if err == ErrRebuildInProgress {
			return s.reply(ctx, constant.ReindexBusyText, "", constant.ReindexBusyText, false), false
		}
		s.logger.Error("Session", "Reindex failed", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		return s.reply(ctx, constant.ServerErrorSpeech, "", constant.ServerErrorSpeech, false), false
	}
	return s.reply(ctx, constant.ReindexDoneText, "", constant.ReindexDoneText, false), false
}

func (s *sessionService) handleAudio(ctx context.Context, sessionID string, msg *dto.ClientMessage) (*dto.ServerReply, bool) {
	wavBytes, err := base64.StdEncoding.DecodeString(msg.AudioB64)
	if err != nil {
		s.logger.Warn("Session", "Bad audio payload skipped", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		return nil, false
	}

	transcript, err := s.transcriber.Transcribe(ctx, wavBytes)
	if err != nil {
		if speech.IsDecodeError(err) {
			// Wrong channel count or sample rate: report and keep the
			// session alive.
			text := fmt.Sprintf("No pude procesar el audio: %s.", err.Error())
			return s.reply(ctx, text, "", text, false), false
		}
		s.logger.Error("Session", "Transcription failed", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		return s.reply(ctx, constant.ServerErrorSpeech, "", constant.ServerErrorSpeech, true), true
	}
	s.logger.Info("Session", "Transcript", map[string]interface{}{"session_id": sessionID, "transcript": transcript})

	lower := strings.ToLower(transcript)
	if strings.Contains(lower, constant.KeywordExit) {
		s.sessionRepo.Delete(sessionID)
		return s.reply(ctx, constant.FarewellText, transcript, constant.FarewellText, true), true
	}

	state, ok := s.sessionRepo.Get(sessionID)
	if !ok {
		state = model.NewSessionState()
	}

	var out *dto.ServerReply
	switch state.Mode {
	case model.ModeInterview:
		out = s.interviewTurn(ctx, state, transcript)
	case model.ModeSearch:
		out = s.searchTurn(ctx, state, transcript)
	default:
		out = s.idleTurn(ctx, state, transcript, lower)
	}
	s.sessionRepo.Save(sessionID, state)
	return out, false
}

// idleTurn routes the first recognized keyword into interview or search mode.
func (s *sessionService) idleTurn(ctx context.Context, state *model.SessionState, transcript, lower string) *dto.ServerReply {
	if strings.Contains(lower, constant.KeywordInterview) {
		state.Mode = model.ModeInterview
		state.InterviewIdx = 0
		q := constant.Questions[0].Prompt
		return s.reply(ctx, q, transcript, constant.InterviewIntroText+q, false)
	}
	if strings.Contains(lower, constant.KeywordSearch) {
		state.Mode = model.ModeSearch
		return s.reply(ctx, constant.SearchPromptText, transcript, constant.SearchPromptText, false)
	}
	return s.reply(ctx, constant.WelcomeText, transcript, constant.NotUnderstoodPrefix+constant.WelcomeText, false)
}

// interviewTurn scores the answer to the current question and either asks the
// next one or closes the interview with recommendations. The state is reset
// to fresh idle in place once the interview concludes either way.
func (s *sessionService) interviewTurn(ctx context.Context, state *model.SessionState, transcript string) *dto.ServerReply {
	cat := constant.Questions[state.InterviewIdx].Category
	if interview.Score(transcript) {
		state.Scores[cat]++
	}
	state.InterviewIdx++

	if state.InterviewIdx < len(constant.Questions) {
		q := constant.Questions[state.InterviewIdx].Prompt
		return s.reply(ctx, q, transcript, q, false)
	}

	recs := interview.Recommend(state.Scores, constant.RecommendationSize)
	*state = *model.NewSessionState()
	if len(recs) == 0 {
		return s.reply(ctx, constant.NoProfileText, transcript, constant.NoProfileText, false)
	}

	labels := make([]string, len(recs))
	for i, r := range recs {
		labels[i] = constant.CategoryLabels[r]
	}
	final := fmt.Sprintf(
		"Según tus respuestas, te recomiendo explorar: %s. Te compartiré opciones basadas en tus PDFs.",
		strings.Join(labels, ", "),
	)

	idx := s.indexService.Current()
	chunks := []string{final}
	for _, r := range recs {
		hits := idx.Search(constant.QueryForCategory(r), constant.CategoryTopK)
		if len(hits) == 0 {
			chunks = append(chunks, fmt.Sprintf("- No encontré PDFs locales para %s.", r))
			continue
		}
		for _, h := range hits {
			chunks = append(chunks, fmt.Sprintf("- %s (página %d)", h.Page.SourceFile, h.Page.Page))
		}
	}

	// Only the recommendation sentence is spoken; the citation list is
	// text-only.
	return s.reply(ctx, strings.Join(chunks, "\n"), transcript, final, false)
}

// searchTurn queries the shared index. The mode deliberately stays in search
// so the user can keep asking without repeating the keyword.
func (s *sessionService) searchTurn(ctx context.Context, state *model.SessionState, transcript string) *dto.ServerReply {
	query := transcript
	if query == "" {
		query = constant.DefaultSearchQuery
	}

	hits := s.indexService.Current().Search(query, constant.SearchTopK)
	if len(hits) == 0 {
		return s.reply(ctx, constant.NoMatchesText, transcript, constant.NoMatchesText, false)
	}

	lines := []string{fmt.Sprintf("Encontré %d resultado(s).", len(hits))}
	for _, h := range hits {
		lines = append(lines, fmt.Sprintf("- %s (página %d)", h.Page.SourceFile, h.Page.Page))
	}
	speak := fmt.Sprintf("Encontré %d resultados relevantes.", len(hits))
	return s.reply(ctx, strings.Join(lines, "\n"), transcript, speak, false)
}

// reply assembles an outbound frame, synthesizing speech for speak when
// non-empty. Synthesis failure degrades to a text-only reply rather than
// failing the turn.
func (s *sessionService) reply(ctx context.Context, text, transcript, speak string, done bool) *dto.ServerReply {
	out := &dto.ServerReply{
		ReplyText:  text,
		Transcript: transcript,
		Done:       done,
	}
	if speak == "" {
		return out
	}
	wavBytes, err := s.synthesizer.Synthesize(ctx, speak)
	if err != nil {
		s.logger.Warn("Session", "Synthesis failed, sending text only", map[string]interface{}{"error": err.Error()})
		return out
	}
	out.AudioB64 = base64.StdEncoding.EncodeToString(wavBytes)
	return out
}
