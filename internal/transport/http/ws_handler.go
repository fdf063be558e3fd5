package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"opentdb-quiz/internal/app"
	"opentdb-quiz/internal/domain"
)

// GameFactory builds a fresh, unstarted game for one connection.
type GameFactory func(options domain.TriviaOptions) *app.Game

type WSHandler struct {
	newGame  GameFactory
	defaults domain.TriviaOptions
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(newGame GameFactory, defaults domain.TriviaOptions, logger *zap.Logger) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WSHandler{
		newGame:  newGame,
		defaults: defaults,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Choice int `json:"choice"`
}

type questionPayload struct {
	Number     int      `json:"number"`
	Total      int      `json:"total"`
	Question   string   `json:"question"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
	Choices    []string `json:"choices"`
}

type answerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Score         string `json:"score"`
}

type finishedPayload struct {
	Score string `json:"score"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and plays one session over the connection.
// Query parameters amount, category, difficulty and type override the server defaults.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	options, err := optionsFromQuery(h.defaults, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	game := h.newGame(options)
	if err := game.Start(r.Context()); err != nil {
		h.logger.Error("start session", zap.Error(err))
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	for !game.IsEnd() {
		payload, selection, err := presentQuestion(game)
		if err != nil {
			_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
			return
		}
		if err := conn.WriteJSON(outboundMessage[questionPayload]{Type: "question", Payload: payload}); err != nil {
			h.logger.Debug("ws write error", zap.Error(err))
			return
		}

		choice, err := h.readChoice(conn, selection)
		if err != nil {
			h.logger.Debug("ws read ended", zap.Error(err))
			return
		}

		correctAnswer, _ := game.CorrectAnswer()
		correct, err := game.Answer(choice)
		if err != nil {
			_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
			return
		}
		result := answerResult{Correct: correct, CorrectAnswer: correctAnswer, Score: game.Score()}
		if err := conn.WriteJSON(outboundMessage[answerResult]{Type: "answerResult", Payload: result}); err != nil {
			return
		}
	}

	_ = conn.WriteJSON(outboundMessage[finishedPayload]{Type: "finished", Payload: finishedPayload{Score: game.Score()}})
}

// readChoice keeps reading until the client sends a valid answer for the current selection.
func (h *WSHandler) readChoice(conn *websocket.Conn, selection []string) (string, error) {
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return "", err
		}
		if inbound.Type != "answer" {
			if err := conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}); err != nil {
				return "", err
			}
			continue
		}
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			if err := conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}); err != nil {
				return "", err
			}
			continue
		}
		choice, err := app.ChoiceAt(payload.Choice, selection)
		if err != nil {
			if werr := conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}}); werr != nil {
				return "", werr
			}
			continue
		}
		return choice, nil
	}
}

func presentQuestion(game *app.Game) (questionPayload, []string, error) {
	question, err := game.Question()
	if err != nil {
		return questionPayload{}, nil, err
	}
	difficulty, _ := game.Difficulty()
	category, _ := game.Category()
	selection, err := game.Selection()
	if err != nil {
		return questionPayload{}, nil, err
	}
	index, total := game.Progress()
	return questionPayload{
		Number:     index + 1,
		Total:      total,
		Question:   question,
		Difficulty: difficulty,
		Category:   category,
		Choices:    selection,
	}, selection, nil
}

func optionsFromQuery(defaults domain.TriviaOptions, query url.Values) (domain.TriviaOptions, error) {
	amount := defaults.Amount
	if raw := query.Get("amount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.TriviaOptions{}, &domain.ConfigurationError{Axis: "amount", Label: raw}
		}
		amount = n
	}
	category := defaults.Category
	if query.Has("category") {
		c, err := domain.CategoryFromLabel(query.Get("category"))
		if err != nil {
			return domain.TriviaOptions{}, err
		}
		category = c
	}
	difficulty := defaults.Difficulty
	if query.Has("difficulty") {
		d, err := domain.DifficultyFromLabel(query.Get("difficulty"))
		if err != nil {
			return domain.TriviaOptions{}, err
		}
		difficulty = d
	}
	typ := defaults.Type
	if query.Has("type") {
		t, err := domain.TypeFromLabel(query.Get("type"))
		if err != nil {
			return domain.TriviaOptions{}, err
		}
		typ = t
	}
	return domain.NewTriviaOptions(amount, category, difficulty, typ)
}
