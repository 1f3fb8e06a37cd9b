package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/sotd/internal/model"
)

// ThreadSource supplies SOTD threads and their comments
type ThreadSource interface {
	ThreadsForMonth(ctx context.Context, month time.Time) ([]model.Thread, error)
	Comments(ctx context.Context, thread model.Thread) ([]model.Comment, error)
}

// Reddit reads SOTD threads through Reddit's public JSON listings
type Reddit struct {
	fetcher     *Fetcher
	baseURL     string
	subreddit   string
	titleMarker string
	searchLimit int
}

// NewReddit creates a Reddit thread source
func NewReddit(fetcher *Fetcher, cfg model.SourceConfig) *Reddit {
	return &Reddit{
		fetcher:     fetcher,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		subreddit:   cfg.Subreddit,
		titleMarker: cfg.TitleMarker,
		searchLimit: cfg.SearchLimit,
	}
}

type listing struct {
	Data struct {
		Children []struct {
			Kind string          `json:"kind"`
			Data json.RawMessage `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type linkData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

type commentData struct {
	ID         string          `json:"id"`
	Author     string          `json:"author"`
	Body       string          `json:"body"`
	CreatedUTC float64         `json:"created_utc"`
	Replies    json.RawMessage `json:"replies"` // "" or a listing
}

// RecentThreads returns up to n of the most recent SOTD threads, oldest first
func (r *Reddit) RecentThreads(ctx context.Context, n int) ([]model.Thread, error) {
	return r.search(ctx, `"*SOTD Thread -"`, n)
}

// ThreadsForMonth returns the SOTD threads created in month's calendar month (UTC)
func (r *Reddit) ThreadsForMonth(ctx context.Context, month time.Time) ([]model.Thread, error) {
	query := fmt.Sprintf("SOTD Thread %s %d", month.Format("Jan"), month.Year())
	threads, err := r.search(ctx, query, r.searchLimit)
	if err != nil {
		return nil, err
	}

	var inMonth []model.Thread
	for _, t := range threads {
		if t.Created.Year() == month.Year() && t.Created.Month() == month.Month() {
			inMonth = append(inMonth, t)
		}
	}
	return inMonth, nil
}

func (r *Reddit) search(ctx context.Context, query string, limit int) ([]model.Thread, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("restrict_sr", "1")
	q.Set("sort", "new")
	q.Set("limit", fmt.Sprint(limit))
	searchURL := fmt.Sprintf("%s/r/%s/search.json?%s", r.baseURL, url.PathEscape(r.subreddit), q.Encode())

	body, err := r.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search threads: %w", err)
	}

	var l listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	var threads []model.Thread
	for _, child := range l.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		var link linkData
		if err := json.Unmarshal(child.Data, &link); err != nil {
			return nil, fmt.Errorf("decode thread: %w", err)
		}
		if !strings.Contains(link.Title, r.titleMarker) {
			continue
		}
		threads = append(threads, model.Thread{
			ID:        link.ID,
			Title:     link.Title,
			Permalink: link.Permalink,
			Created:   fromUnix(link.CreatedUTC),
		})
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].Created.Before(threads[j].Created)
	})
	return threads, nil
}

// Comments returns every comment in a thread, replies included, in thread order
func (r *Reddit) Comments(ctx context.Context, thread model.Thread) ([]model.Comment, error) {
	commentsURL := fmt.Sprintf("%s/comments/%s.json?limit=500", r.baseURL, url.PathEscape(thread.ID))

	body, err := r.fetcher.Fetch(ctx, commentsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", thread.ID, err)
	}

	// [0] is the post itself, [1] the comment tree
	var listings []listing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, fmt.Errorf("decode comments for %s: %w", thread.ID, err)
	}
	if len(listings) < 2 {
		return nil, nil
	}

	var comments []model.Comment
	if err := flattenComments(listings[1], thread.ID, &comments); err != nil {
		return nil, fmt.Errorf("decode comments for %s: %w", thread.ID, err)
	}
	return comments, nil
}

func flattenComments(l listing, threadID string, out *[]model.Comment) error {
	for _, child := range l.Data.Children {
		// "more" stubs need another request per stub and are skipped
		if child.Kind != "t1" {
			continue
		}
		var c commentData
		if err := json.Unmarshal(child.Data, &c); err != nil {
			return err
		}
		*out = append(*out, model.Comment{
			ID:       c.ID,
			ThreadID: threadID,
			Author:   c.Author,
			Body:     c.Body,
			Created:  fromUnix(c.CreatedUTC),
		})

		replies := bytes.TrimSpace(c.Replies)
		if len(replies) == 0 || replies[0] != '{' {
			continue
		}
		var nested listing
		if err := json.Unmarshal(replies, &nested); err != nil {
			return err
		}
		if err := flattenComments(nested, threadID, out); err != nil {
			return err
		}
	}
	return nil
}

func fromUnix(ts float64) time.Time {
	return time.Unix(int64(ts), 0).UTC()
}
