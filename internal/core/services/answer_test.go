package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
)

// staticIndex serves a fixed snapshot.
type staticIndex struct {
	idx *domain.Index
	err error
}

func (s *staticIndex) Snapshot(_ context.Context) (*domain.Index, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.idx, nil
}

// mockLLM is a scriptable LLMService.
type mockLLM struct {
	reply    string
	err      error
	panicMsg string
	model    string

	lastMessages []driven.ChatMessage
	lastOpts     driven.ChatOptions
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.lastMessages = messages
	m.lastOpts = opts
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.reply, m.err
}

func (m *mockLLM) ModelName() string {
	if m.model != "" {
		return m.model
	}
	return "mock-model"
}

func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

func editalIndex() *domain.Index {
	return &domain.Index{
		Documents: []domain.Document{{Name: "edital-42.pdf", PageCount: 2}},
		Chunks: []domain.Chunk{
			{DocumentIndex: 0, Page: 1, Text: "Abertura da sessão: 10/03/2026 às 14:00 no Comprasnet."},
			{DocumentIndex: 0, Page: 2, Text: "Validade da proposta: 60 dias. Prazo de entrega: 30 dias."},
		},
	}
}

func TestAnswerService_EmptyQuestion(t *testing.T) {
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, nil, "gpt-4.1-mini", 0)

	ans := svc.Answer(context.Background(), "   ", true)
	assert.Equal(t, "Resposta", ans.Title)
	assert.Equal(t, "Pergunta vazia.", ans.Markdown)
	assert.False(t, ans.Authoritative)
	assert.Empty(t, ans.Sources)
}

func TestAnswerService_NoMatchingContext(t *testing.T) {
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, nil, "gpt-4.1-mini", 12)

	ans := svc.Answer(context.Background(), "garantia contratual exigida", true)
	assert.Contains(t, ans.Markdown, "Não encontrei trechos relevantes")
	assert.Contains(t, ans.Markdown, "Sugestões de pergunta")
	assert.False(t, ans.Authoritative)
	assert.Empty(t, ans.Sources)
}

func TestAnswerService_RemoteAnswer(t *testing.T) {
	llm := &mockLLM{reply: "## Resumo direto\n- Abertura em 10/03/2026 às 14:00."}
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, llm, "", 12)

	ans := svc.Answer(context.Background(), "quando é a abertura da sessão?", true)
	assert.True(t, ans.Authoritative)
	assert.Contains(t, ans.Markdown, "Abertura em 10/03/2026")
	require.NotEmpty(t, ans.Sources)
	assert.Equal(t, "edital-42.pdf · pág. 1", ans.Sources[0])

	// The model receives the fixed system prompt and a grounded user
	// message with question, hints and context.
	require.Len(t, llm.lastMessages, 2)
	assert.Equal(t, "system", llm.lastMessages[0].Role)
	assert.Contains(t, llm.lastMessages[0].Content, "editais de licitação")
	user := llm.lastMessages[1].Content
	assert.Contains(t, user, "PERGUNTA:")
	assert.Contains(t, user, "PISTAS EXTRAÍDAS:")
	assert.Contains(t, user, "CONTEXTO:")
	assert.Contains(t, user, "[edital-42.pdf · pág. 1]")
	assert.Equal(t, llmMaxTokens, llm.lastOpts.MaxTokens)
	assert.Equal(t, llmTemperature, llm.lastOpts.Temperature)
}

func TestAnswerService_RemoteFailureDegradesToLocal(t *testing.T) {
	llm := &mockLLM{err: errors.New("connection refused")}
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, llm, "", 12)

	ans := svc.Answer(context.Background(), "quando é a abertura da sessão?", true)
	assert.False(t, ans.Authoritative)
	assert.Contains(t, ans.Markdown, "## Resumo direto")
	assert.Contains(t, ans.Markdown, "IA indisponível no momento")
	assert.NotEmpty(t, ans.Sources)
}

func TestAnswerService_RemoteEmptyReplyFallsBackAuthoritative(t *testing.T) {
	llm := &mockLLM{reply: "   \n"}
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, llm, "", 12)

	ans := svc.Answer(context.Background(), "quando é a abertura da sessão?", true)
	assert.True(t, ans.Authoritative)
	assert.Contains(t, ans.Markdown, "## Resumo direto")
	assert.NotContains(t, ans.Markdown, "IA indisponível")
}

func TestAnswerService_LocalAnswerWithoutModel(t *testing.T) {
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, nil, "", 12)

	ans := svc.Answer(context.Background(), "quando é a abertura da sessão?", true)
	assert.True(t, ans.Authoritative)
	assert.Contains(t, ans.Markdown, "## Resumo direto")
	assert.Contains(t, ans.Markdown, "## Detalhes")
	assert.Contains(t, ans.Markdown, "10/03/2026")
	assert.Contains(t, ans.Markdown, "às 14:00")
	assert.Contains(t, ans.Markdown, "Comprasnet")
}

func TestAnswerService_LocalRequestedDespiteModel(t *testing.T) {
	llm := &mockLLM{reply: "resposta remota"}
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, llm, "", 12)

	ans := svc.Answer(context.Background(), "quando é a abertura da sessão?", false)
	assert.True(t, ans.Authoritative)
	assert.NotContains(t, ans.Markdown, "resposta remota")
	assert.Nil(t, llm.lastMessages)
}

func TestAnswerService_PanicBecomesAnswer(t *testing.T) {
	llm := &mockLLM{panicMsg: "boom"}
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, llm, "", 12)

	ans := svc.Answer(context.Background(), "quando é a abertura da sessão?", true)
	assert.Equal(t, "Resposta", ans.Title)
	assert.Contains(t, ans.Markdown, "Não consegui responder agora")
	assert.Contains(t, ans.Markdown, "boom")
	assert.False(t, ans.Authoritative)
	// Sources of the assembled context survive the panic.
	assert.NotEmpty(t, ans.Sources)
}

func TestAnswerService_SnapshotErrorBecomesAnswer(t *testing.T) {
	svc := NewAnswerService(&staticIndex{err: errors.New("disk gone")}, nil, "", 12)

	ans := svc.Answer(context.Background(), "abertura?", true)
	assert.Contains(t, ans.Markdown, "Não consegui responder agora")
	assert.Contains(t, ans.Markdown, "disk gone")
	assert.False(t, ans.Authoritative)
}

func TestAnswerService_LastSources(t *testing.T) {
	svc := NewAnswerService(&staticIndex{idx: editalIndex()}, nil, "", 12)

	assert.Empty(t, svc.LastSources())
	_ = svc.Answer(context.Background(), "validade da proposta", true)
	sources := svc.LastSources()
	require.NotEmpty(t, sources)
	assert.Contains(t, sources[0], "edital-42.pdf · pág.")

	// The returned slice is a copy.
	sources[0] = "mutated"
	assert.NotEqual(t, "mutated", svc.LastSources()[0])
}

func TestAnswerService_Status(t *testing.T) {
	t.Run("remote on", func(t *testing.T) {
		llm := &mockLLM{model: "gpt-4.1-mini"}
		svc := NewAnswerService(&staticIndex{idx: editalIndex()}, llm, "", 12)
		assert.Equal(t, "IA ON · Modelo: gpt-4.1-mini · Docs indexados: 1",
			svc.Status(context.Background()))
	})

	t.Run("remote off", func(t *testing.T) {
		svc := NewAnswerService(&staticIndex{idx: &domain.Index{}}, nil, "llama3.2", 12)
		assert.Equal(t, "IA OFF · Modelo: llama3.2 · Docs indexados: 0",
			svc.Status(context.Background()))
	})
}

func TestAssembleContext(t *testing.T) {
	idx := editalIndex()
	ctxText, sources := assembleContext(idx, idx.Chunks)

	parts := strings.Split(ctxText, "\n\n")
	require.Len(t, parts, 2)
	assert.Equal(t, "[edital-42.pdf · pág. 1] Abertura da sessão: 10/03/2026 às 14:00 no Comprasnet.", parts[0])
	assert.Equal(t, []string{"edital-42.pdf · pág. 1", "edital-42.pdf · pág. 2"}, sources)
}

func TestAssembleContext_UnknownDocumentIndex(t *testing.T) {
	idx := &domain.Index{}
	ctxText, sources := assembleContext(idx, []domain.Chunk{{DocumentIndex: 7, Page: 3, Text: "trecho órfão"}})
	assert.Contains(t, ctxText, "[doc_7 · pág. 3]")
	assert.Equal(t, []string{"doc_7 · pág. 3"}, sources)
}

func TestRenderHints(t *testing.T) {
	assert.Equal(t, "(nenhuma)", renderHints(domain.Facts{}))

	facts := domain.Facts{
		Dates:    []string{"10/03/2026"},
		Times:    []string{"14:00"},
		Platform: "comprasnet",
		Validity: "60 dias",
	}
	hints := renderHints(facts)
	assert.Contains(t, hints, "Datas encontradas: 10/03/2026.")
	assert.Contains(t, hints, "Horários encontrados: 14:00.")
	assert.Contains(t, hints, "Plataforma provável: comprasnet.")
	assert.Contains(t, hints, "Validade de proposta vista: 60 dias.")
}

func TestRenderHints_HabilitacaoCappedAtEight(t *testing.T) {
	facts := domain.Facts{}
	for i := 0; i < 12; i++ {
		facts.Habilitacao = append(facts.Habilitacao, strings.Repeat("item ", 2)+string(rune('a'+i)))
	}
	hints := renderHints(facts)
	assert.Equal(t, 8, strings.Count(hints, "\n- "))
}

func TestLocalAnswer_NoFacts(t *testing.T) {
	md := localAnswer(domain.Facts{})
	assert.Contains(t, md, "## Resumo direto")
	assert.Contains(t, md, "- (sem detalhes claros no contexto)")
	assert.Contains(t, md, "- (itens não identificados com segurança no contexto)")
}

func TestLocalAnswer_PlatformTitleCased(t *testing.T) {
	md := localAnswer(domain.Facts{Platform: "portal de compras públicas"})
	assert.Contains(t, md, "**Plataforma/Local:** Portal De Compras Públicas")
}
