package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Usage: go run ./cmd/smoke [file ...]
// Walks the chat API of a running server. Files given as arguments are uploaded before asking.

func baseURL() string {
	if v := os.Getenv("SMOKE_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000/api/chat/v1"
}

func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func do(req *http.Request) (*http.Response, []byte, error) {
	client := &http.Client{} // No timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func sendJSON(method, path string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL()+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return do(req)
}

func sendFiles(paths []string) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, err
		}
		part, err := w.CreateFormFile("files", filepath.Base(p))
		if err != nil {
			return nil, nil, err
		}
		if _, err := part.Write(data); err != nil {
			return nil, nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL()+"/documents", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return do(req)
}

func step(title string, call func() (*http.Response, []byte, error)) {
	color.Yellow("\n%s", title)
	resp, body, err := call()
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 300 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(body)
}

func main() {
	color.Cyan("🚀 Starting chat API smoke test against %s\n", baseURL())

	step("1. Get state", func() (*http.Response, []byte, error) {
		return sendJSON(http.MethodGet, "", nil)
	})
	step("2. Create chat", func() (*http.Response, []byte, error) {
		return sendJSON(http.MethodPost, "/sessions", nil)
	})
	step("3. Rename chat", func() (*http.Response, []byte, error) {
		return sendJSON(http.MethodPut, "/sessions/current", map[string]string{"name": "Smoke Test"})
	})
	step("4. Ask before upload", func() (*http.Response, []byte, error) {
		return sendJSON(http.MethodPost, "/messages", map[string]string{"question": "Anything there?"})
	})

	files := os.Args[1:]
	if len(files) == 0 {
		color.Cyan("\nNo files given, skipping upload and question.")
	} else {
		step("5. Upload documents", func() (*http.Response, []byte, error) {
			return sendFiles(files)
		})
		step("6. Ask a question", func() (*http.Response, []byte, error) {
			return sendJSON(http.MethodPost, "/messages", map[string]string{"question": "Summarize the document in two sentences."})
		})
	}

	step("7. Delete chat", func() (*http.Response, []byte, error) {
		return sendJSON(http.MethodDelete, "/sessions/current", nil)
	})

	color.Cyan("\n✅ Smoke test finished")
}
