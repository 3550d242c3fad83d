package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Vovarama1992/super_bot/internal/user"
)

// лимит translate_tts на один запрос
const ttsChunkRunes = 200

// GoogleTTS - тот же эндпоинт, что дёргает gTTS
type GoogleTTS struct {
	baseURL string
	client  *http.Client
}

func NewGoogleTTS(baseURL string, timeout time.Duration) *GoogleTTS {
	return &GoogleTTS{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func ttsLang(lang user.Language) string {
	if lang == user.LangEnglish {
		return "en"
	}
	return "km"
}

// Synthesize - режем текст на куски, mp3-кадры просто склеиваем
func (t *GoogleTTS) Synthesize(ctx context.Context, lang user.Language, text string) ([]byte, error) {
	chunks := SplitChunks(text, ttsChunkRunes)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("tts: empty text")
	}

	var out bytes.Buffer
	for i, chunk := range chunks {
		if err := t.fetchChunk(ctx, &out, ttsLang(lang), chunk, i, len(chunks)); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

func (t *GoogleTTS) fetchChunk(ctx context.Context, w io.Writer, tl, chunk string, idx, total int) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", tl)
	q.Set("q", chunk)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tts failed: status %d: %s", resp.StatusCode, b)
	}

	_, err = io.Copy(w, resp.Body)
	return err
}

// SplitChunks - куски не длиннее max рун; режем по пробелу или знаку
// препинания, кхмерский текст без пробелов режется жёстко
func SplitChunks(text string, max int) []string {
	if max <= 0 {
		max = ttsChunkRunes
	}
	runes := []rune(strings.TrimSpace(text))
	var out []string

	for len(runes) > 0 {
		if len(runes) <= max {
			out = appendChunk(out, runes)
			break
		}

		cut := max
		for i := max; i > max/2; i-- {
			if isBreak(runes[i-1]) {
				cut = i
				break
			}
		}

		out = appendChunk(out, runes[:cut])
		runes = runes[cut:]
	}
	return out
}

func appendChunk(out []string, r []rune) []string {
	if s := strings.TrimSpace(string(r)); s != "" {
		out = append(out, s)
	}
	return out
}

func isBreak(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '។', '៕', '៖':
		return true
	}
	return unicode.IsSpace(r)
}
