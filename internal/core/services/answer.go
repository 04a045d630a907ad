package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driving"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/text"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// answerTitle is the fixed title of every answer.
const answerTitle = "Resposta"

// llmMaxTokens and llmTemperature are the fixed generation settings for
// remote answers.
const (
	llmMaxTokens   = 900
	llmTemperature = 0.2
)

// IndexSource provides the current index snapshot for ranking.
type IndexSource interface {
	Snapshot(ctx context.Context) (*domain.Index, error)
}

// AnswerService answers questions over the indexed corpus. The remote
// model is optional: when it is absent or fails mid-call the service
// degrades to a locally rendered summary instead of returning an error.
// Answer never panics; failures surface inside the returned answer.
type AnswerService struct {
	index IndexSource
	llm   driven.LLMService // nil when no remote model is configured
	model string            // reported by Status when llm is nil
	topK  int

	mu          sync.Mutex
	lastSources []string
}

// NewAnswerService creates an answer service. llm may be nil; model is
// the configured model name shown in status output when it is.
func NewAnswerService(index IndexSource, llm driven.LLMService, model string, topK int) *AnswerService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &AnswerService{
		index: index,
		llm:   llm,
		model: model,
		topK:  topK,
	}
}

// Answer runs the full retrieval and synthesis pipeline for one
// question.
func (s *AnswerService) Answer(ctx context.Context, question string, useRemote bool) (ans domain.Answer) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Answer pipeline panic: %v", r)
			ans = domain.Answer{
				Title:    answerTitle,
				Markdown: fmt.Sprintf("Não consegui responder agora. Detalhe técnico: %v", r),
				Sources:  s.LastSources(),
			}
		}
	}()

	q := strings.TrimSpace(question)
	if q == "" {
		return domain.Answer{Title: answerTitle, Markdown: emptyQuestionAnswer, Sources: []string{}}
	}

	logger.Section("Question")
	logger.Debug("Q: %s", q)

	idx, err := s.index.Snapshot(ctx)
	if err != nil {
		return domain.Answer{
			Title:    answerTitle,
			Markdown: fmt.Sprintf("Não consegui responder agora. Detalhe técnico: %v", err),
			Sources:  s.LastSources(),
		}
	}

	top := rankChunks(q, idx.Chunks, s.topK)
	contextText, sources := assembleContext(idx, top)
	s.setLastSources(sources)

	if contextText == "" {
		return domain.Answer{Title: answerTitle, Markdown: noContextAnswer, Sources: sources}
	}

	facts := ExtractFacts(contextText)

	if useRemote && s.llm != nil {
		remote, err := s.remoteAnswer(ctx, q, contextText, facts)
		if err != nil {
			logger.Warn("Remote model failed, using local summary: %v", err)
			local := localAnswer(facts) + degradedNotice
			return domain.Answer{Title: answerTitle, Markdown: local, Sources: sources}
		}
		if strings.TrimSpace(remote) == "" {
			remote = localAnswer(facts)
		}
		return domain.Answer{Title: answerTitle, Markdown: remote, Sources: sources, Authoritative: true}
	}

	return domain.Answer{Title: answerTitle, Markdown: localAnswer(facts), Sources: sources, Authoritative: true}
}

// LastSources returns the citations of the most recent context, even
// when the answer itself failed.
func (s *AnswerService) LastSources() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lastSources))
	copy(out, s.lastSources)
	return out
}

func (s *AnswerService) setLastSources(sources []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSources = make([]string, len(sources))
	copy(s.lastSources, sources)
}

// Status reports remote-model availability, the active model name and
// the indexed document count on one line.
func (s *AnswerService) Status(ctx context.Context) string {
	state, model := "OFF", s.model
	if s.llm != nil {
		state, model = "ON", s.llm.ModelName()
	}
	docs := 0
	if idx, err := s.index.Snapshot(ctx); err == nil {
		docs = len(idx.Documents)
	}
	return fmt.Sprintf("IA %s · Modelo: %s · Docs indexados: %d", state, model, docs)
}

// remoteAnswer asks the configured model, grounding it on the assembled
// context and the mined hints.
func (s *AnswerService) remoteAnswer(ctx context.Context, question, contextText string, facts domain.Facts) (string, error) {
	userMsg := answerInstructions + "\n\n" +
		"PERGUNTA:\n" + question + "\n\n" +
		"PISTAS EXTRAÍDAS:\n" + renderHints(facts) + "\n\n" +
		"CONTEXTO:\n" + contextText

	out, err := s.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMsg},
	}, driven.ChatOptions{MaxTokens: llmMaxTokens, Temperature: llmTemperature})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRemoteReasoning, err)
	}
	return strings.TrimSpace(out), nil
}

// assembleContext renders ranked chunks as cited passages and returns
// the joined context plus the parallel citation list.
func assembleContext(idx *domain.Index, chunks []domain.Chunk) (string, []string) {
	parts := make([]string, 0, len(chunks))
	sources := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		name := fmt.Sprintf("doc_%d", ch.DocumentIndex)
		if ch.DocumentIndex >= 0 && ch.DocumentIndex < len(idx.Documents) {
			name = idx.Documents[ch.DocumentIndex].Name
		}
		parts = append(parts, fmt.Sprintf("[%s · pág. %d] %s", name, ch.Page, text.NormalizeSpace(ch.Text)))
		sources = append(sources, fmt.Sprintf("%s · pág. %d", name, ch.Page))
	}
	return strings.Join(parts, "\n\n"), sources
}

// renderHints lists the mined facts for the model, or "(nenhuma)" when
// nothing was found.
func renderHints(facts domain.Facts) string {
	var hints []string
	if len(facts.Dates) > 0 {
		hints = append(hints, fmt.Sprintf("Datas encontradas: %s.", strings.Join(facts.Dates, ", ")))
	}
	if len(facts.Times) > 0 {
		hints = append(hints, fmt.Sprintf("Horários encontrados: %s.", strings.Join(facts.Times, ", ")))
	}
	if facts.Platform != "" {
		hints = append(hints, fmt.Sprintf("Plataforma provável: %s.", facts.Platform))
	}
	if len(facts.Links) > 0 {
		hints = append(hints, fmt.Sprintf("Links possíveis: %s.", strings.Join(facts.Links, ", ")))
	}
	if facts.Validity != "" {
		hints = append(hints, fmt.Sprintf("Validade de proposta vista: %s.", facts.Validity))
	}
	if facts.Deadline != "" {
		hints = append(hints, fmt.Sprintf("Prazo de entrega/execução visto: %s.", facts.Deadline))
	}
	if len(facts.Habilitacao) > 0 {
		items := facts.Habilitacao
		if len(items) > 8 {
			items = items[:8]
		}
		hints = append(hints, "Trechos de habilitação detectados (resuma e organize):\n- "+strings.Join(items, "\n- "))
	}
	if len(hints) == 0 {
		return "(nenhuma)"
	}
	return strings.Join(hints, "\n")
}

var platformTitle = cases.Title(language.BrazilianPortuguese)

// localAnswer renders the deterministic markdown summary used when the
// remote model is unavailable or not requested.
func localAnswer(facts domain.Facts) string {
	det := make([]string, 0, 5)
	if len(facts.Dates) > 0 || len(facts.Times) > 0 {
		line := "- **Data/Hora:**"
		if len(facts.Dates) > 0 {
			line += " " + facts.Dates[0]
		}
		if len(facts.Times) > 0 {
			line += " às " + facts.Times[0]
		}
		det = append(det, line)
	}
	if facts.Platform != "" {
		det = append(det, "- **Plataforma/Local:** "+platformTitle.String(facts.Platform))
	}
	if len(facts.Links) > 0 {
		det = append(det, "- **Links:** "+strings.Join(facts.Links, ", "))
	}
	if facts.Validity != "" {
		det = append(det, "- **Validade da proposta:** "+facts.Validity)
	}
	if facts.Deadline != "" {
		det = append(det, "- **Prazo de entrega/execução:** "+facts.Deadline)
	}
	if len(det) == 0 {
		det = []string{"- (sem detalhes claros no contexto)"}
	}

	habMD := "- (itens não identificados com segurança no contexto)"
	if len(facts.Habilitacao) > 0 {
		items := facts.Habilitacao
		if len(items) > 12 {
			items = items[:12]
		}
		habMD = "- " + strings.Join(items, "\n- ")
	}

	return "## Resumo direto\n" +
		"- Não foi possível usar a IA agora; abaixo um resumo aproximado do que foi encontrado no edital.\n\n" +
		"## Detalhes\n" +
		strings.Join(det, "\n") + "\n\n" +
		"## Documentos de habilitação\n" +
		habMD + "\n"
}
