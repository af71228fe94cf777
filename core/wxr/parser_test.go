package wxr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/wp2zola/core"
)

func export(items string) string {
	return `<?xml version="1.0" encoding="UTF-8" ?>
<rss version="2.0"
    xmlns:content="http://purl.org/rss/1.0/modules/content/"
    xmlns:excerpt="http://wordpress.org/export/1.2/excerpt/"
    xmlns:wp="http://wordpress.org/export/1.2/"
>
<channel>
    <title>Blog</title>
    <wp:base_site_url>https://example.com</wp:base_site_url>
` + items + `
</channel>
</rss>`
}

const postItem = `<item>
    <title>Post 1</title>
    <pubDate>Mon, 01 Sep 2008 21:02:27 +0000</pubDate>
    <description></description>
    <link>http://example.com/post1</link>
    <content:encoded><![CDATA[Hello <b>world</b>]]></content:encoded>
    <wp:post_type><![CDATA[post]]></wp:post_type>
    <wp:status><![CDATA[publish]]></wp:status>
</item>`

func TestParsePost(t *testing.T) {
	got, err := Parse(strings.NewReader(export(postItem)))
	require.NoError(t, err)

	assert.Equal(t, "Blog", got.Title)
	assert.Equal(t, "https://example.com", got.BaseURL)
	require.Len(t, got.Posts, 1)

	post := got.Posts[0]
	assert.Equal(t, "Post 1", post.Title)
	assert.Equal(t, "http://example.com/post1", post.Link)
	assert.Equal(t, "Mon, 01 Sep 2008 21:02:27 +0000", post.PubDate)
	assert.Equal(t, core.StatusPublish, post.Status)
	assert.Equal(t, core.PostTypePost, post.Type)
	assert.Equal(t, "Hello <b>world</b>", post.Content)
}

func TestExcerptEncodedIsIgnored(t *testing.T) {
	// Both content:encoded and excerpt:encoded have local name "encoded";
	// only the content-module one must land in the body.
	item := `<item>
    <title>P</title>
    <link>http://example.com/p</link>
    <pubDate>Mon, 01 Sep 2008 21:02:27 +0000</pubDate>
    <excerpt:encoded><![CDATA[the excerpt]]></excerpt:encoded>
    <content:encoded><![CDATA[the body]]></content:encoded>
    <wp:post_type><![CDATA[post]]></wp:post_type>
    <wp:status><![CDATA[publish]]></wp:status>
</item>`

	got, err := Parse(strings.NewReader(export(item)))
	require.NoError(t, err)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "the body", got.Posts[0].Content)
}

func TestUnknownPostTypeMapsToOther(t *testing.T) {
	item := strings.Replace(postItem, "[post]", "[wpcode]", 1)

	got, err := Parse(strings.NewReader(export(item)))
	require.NoError(t, err)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, core.PostTypeOther, got.Posts[0].Type)
}

func TestStatuses(t *testing.T) {
	for _, status := range []core.Status{
		core.StatusPublish, core.StatusDraft, core.StatusInherit, core.StatusPrivate,
	} {
		item := strings.Replace(postItem, "[publish]", "["+string(status)+"]", 1)
		got, err := Parse(strings.NewReader(export(item)))
		require.NoError(t, err)
		assert.Equal(t, status, got.Posts[0].Status)
	}
}

func TestUnknownStatusIsAnError(t *testing.T) {
	item := strings.Replace(postItem, "[publish]", "[pending-review]", 1)

	_, err := Parse(strings.NewReader(export(item)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending-review")
	assert.Contains(t, err.Error(), "Post 1")
}

func TestMalformedXML(t *testing.T) {
	_, err := Parse(strings.NewReader("<rss><channel>"))
	require.Error(t, err)
}

func TestEmptyChannel(t *testing.T) {
	got, err := Parse(strings.NewReader(export("")))
	require.NoError(t, err)
	assert.Empty(t, got.Posts)
}
