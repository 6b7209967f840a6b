//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api/v1"
)

func register(t *testing.T, client *http.Client, email, name string) string {
	payload := map[string]string{
		"email":     email,
		"password":  "password123",
		"full_name": name,
	}
	body, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["access_token"].(string)
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestInboxFlow(t *testing.T) {
	// Assumes the API server is running on localhost:8080 with a clean
	// database; run `docker-compose up` first.
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	sellerToken := register(t, client, "seller@example.com", "Seller")
	buyerToken := register(t, client, "buyer@example.com", "Buyer")

	var adID string
	t.Run("Seller Posts Ad", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/ads", sellerToken, map[string]interface{}{
			"title":    "Trek Domane SL6",
			"category": "road",
			"price":    1850,
			"location": "Baku",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		adID = result["id"].(string)
	})

	var buyerCommentID string
	t.Run("Buyer Comments On Ad", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", fmt.Sprintf("%s/ads/%s/comments", baseURL, adID), buyerToken, map[string]interface{}{
			"content": "Is this still available?",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		buyerCommentID = result["id"].(string)
	})

	t.Run("Seller Sees Comment In Inbox", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/inbox", nil)
		req.Header.Set("Authorization", "Bearer "+sellerToken)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var items []map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&items)
		require.Len(t, items, 1)
		assert.Equal(t, buyerCommentID, items[0]["id"])
		assert.Equal(t, "ad_comment", items[0]["kind"])
		assert.Equal(t, false, items[0]["is_read"])
	})

	var replyID string
	t.Run("Seller Replies", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", fmt.Sprintf("%s/ads/%s/comments", baseURL, adID), sellerToken, map[string]interface{}{
			"content":   "Yes, still for sale.",
			"parent_id": buyerCommentID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		replyID = result["id"].(string)
	})

	t.Run("Buyer Sees Reply", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/inbox", nil)
		req.Header.Set("Authorization", "Bearer "+buyerToken)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var items []map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&items)
		require.Len(t, items, 1)
		assert.Equal(t, replyID, items[0]["id"])
		assert.Equal(t, "reply", items[0]["kind"])
	})

	t.Run("Buyer Cannot Mark Seller Notifications", func(t *testing.T) {
		// The id belongs to the seller's inbox; the call succeeds but
		// changes nothing.
		resp, _ := doJSON(t, client, "PATCH", baseURL+"/inbox", buyerToken, map[string]interface{}{
			"ids": []string{buyerCommentID},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		req, _ := http.NewRequest("GET", baseURL+"/inbox/unread-count", nil)
		req.Header.Set("Authorization", "Bearer "+sellerToken)
		countResp, err := client.Do(req)
		require.NoError(t, err)
		defer countResp.Body.Close()

		var count map[string]interface{}
		json.NewDecoder(countResp.Body).Decode(&count)
		assert.Equal(t, float64(1), count["count"])
	})

	t.Run("Mark Read Is Idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, result := doJSON(t, client, "PATCH", baseURL+"/inbox", sellerToken, map[string]interface{}{
				"ids": []string{buyerCommentID},
			})
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, true, result["success"])
		}

		req, _ := http.NewRequest("GET", baseURL+"/inbox/unread-count", nil)
		req.Header.Set("Authorization", "Bearer "+sellerToken)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var count map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&count)
		assert.Equal(t, float64(0), count["count"])
	})

	t.Run("Empty Mark Read Rejected", func(t *testing.T) {
		resp, _ := doJSON(t, client, "PATCH", baseURL+"/inbox", sellerToken, map[string]interface{}{
			"ids": []string{},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
