package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/feed"
	"github.com/erp/sellercenter/internal/domain/shared"
)

const feedDetailXML = `<FeedDetail>
  <Feed>e3fd5da5-96b5-4a5b-8c2a-4d3e2a1f0b6c</Feed>
  <Status>Finished</Status>
  <Action>ProductCreate</Action>
  <CreationDate>2024-03-01 10:00:00</CreationDate>
  <UpdatedDate>2024-03-01 10:05:00</UpdatedDate>
  <Source>api</Source>
  <TotalRecords>3</TotalRecords>
  <ProcessedRecords>3</ProcessedRecords>
  <FailedRecords>1</FailedRecords>
  <FeedErrors>
    <Error><Code>0</Code><Message>Field Price must be positive</Message><SellerSku>SKU-2</SellerSku></Error>
  </FeedErrors>
  <FeedWarnings>
    <Warning><Message>Image too small</Message><SellerSku>SKU-1</SellerSku></Warning>
  </FeedWarnings>
  <FailureReports><MimeType>text/csv</MimeType><File>c2t1LGVycm9y</File></FailureReports>
</FeedDetail>`

func TestParseFeed(t *testing.T) {
	f, err := ParseFeed(element(t, feedDetailXML))
	require.NoError(t, err)

	assert.Equal(t, "e3fd5da5-96b5-4a5b-8c2a-4d3e2a1f0b6c", f.ID)
	assert.Equal(t, feed.StatusFinished, f.Status)
	assert.True(t, f.IsDone())
	require.NotNil(t, f.FailedRecords)
	assert.Equal(t, 1, *f.FailedRecords)
	require.NotNil(t, f.CreationDate)
	assert.Equal(t, 10, f.CreationDate.Hour())

	require.Len(t, f.Errors, 1)
	assert.Equal(t, "SKU-2", f.Errors[0].SellerSku)
	require.Len(t, f.Warnings, 1)
	require.NotNil(t, f.FailureReports)
	report, err := f.FailureReports.Decode()
	require.NoError(t, err)
	assert.Equal(t, "sku,error", string(report))
}

func TestParseFeed_EmptyCounters(t *testing.T) {
	raw := `<Feed><Feed>f1</Feed><Status>Queued</Status><Action>ProductUpdate</Action>
  <CreationDate/><UpdatedDate/><Source>api</Source>
  <TotalRecords/><ProcessedRecords/><FailedRecords/></Feed>`

	f, err := ParseFeed(element(t, raw))
	require.NoError(t, err)
	assert.Nil(t, f.TotalRecords)
	assert.Nil(t, f.CreationDate)
	assert.Empty(t, f.Errors)
	assert.Nil(t, f.FailureReports)
}

func TestParseFeedCount_MissingFinished(t *testing.T) {
	raw := `<FeedCount><Total>5</Total><Queued>1</Queued><Processing>1</Processing><Canceled>0</Canceled></FeedCount>`

	_, err := ParseFeedCount(element(t, raw))

	var structErr *shared.StructureError
	require.True(t, errors.As(err, &structErr))
	assert.Equal(t, "FeedCount", structErr.Model)
	assert.Equal(t, "Finished", structErr.Field)
}

func TestParseFeedPage(t *testing.T) {
	raw := `<Body>
  <FeedCount><Total>2</Total><Queued>1</Queued><Processing>0</Processing><Finished>1</Finished><Canceled>0</Canceled></FeedCount>
  <Feeds>
    <Feed><Feed>f1</Feed><Status>Queued</Status><Action>ProductCreate</Action><CreationDate/><UpdatedDate/><Source>api</Source><TotalRecords/><ProcessedRecords/><FailedRecords/></Feed>
    <Feed><Feed>f2</Feed><Status>Finished</Status><Action>Image</Action><CreationDate/><UpdatedDate/><Source>web</Source><TotalRecords>1</TotalRecords><ProcessedRecords>1</ProcessedRecords><FailedRecords>0</FailedRecords></Feed>
  </Feeds>
</Body>`

	page, err := ParseFeedPage(element(t, raw))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count.Total)
	assert.Equal(t, 1, page.Count.Pending())
	assert.Equal(t, 2, page.Feeds.Len())

	t.Run("partial feed count fails the page", func(t *testing.T) {
		e := element(t, raw)
		count := e.SelectElement("FeedCount")
		count.RemoveChild(count.SelectElement("Canceled"))

		_, err := ParseFeedPage(e)
		var structErr *shared.StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Equal(t, "Canceled", structErr.Field)
	})

	t.Run("one malformed feed fails the page", func(t *testing.T) {
		e := element(t, raw)
		first := e.SelectElement("Feeds").SelectElement("Feed")
		first.RemoveChild(first.SelectElement("Source"))

		_, err := ParseFeedPage(e)
		assert.ErrorIs(t, err, shared.ErrMissingStructuralField)
	})
}
