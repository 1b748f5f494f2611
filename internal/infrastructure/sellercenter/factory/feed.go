package factory

import (
	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/feed"
)

// ParseFeed builds a feed from a <FeedDetail> or <Feed> element
func ParseFeed(e *etree.Element) (*feed.Feed, error) {
	if err := ValidateStructure(e, "Feed",
		"Feed", "Status", "Action", "CreationDate", "UpdatedDate", "Source",
		"TotalRecords", "ProcessedRecords", "FailedRecords"); err != nil {
		return nil, err
	}
	f := newFields(e, "Feed")
	total := f.optInt("TotalRecords")
	processed := f.optInt("ProcessedRecords")
	failed := f.optInt("FailedRecords")
	if f.err != nil {
		return nil, f.err
	}

	fd, err := feed.New(f.text("Feed"), feed.Status(f.text("Status")), f.text("Action"))
	if err != nil {
		return nil, err
	}
	fd.CreationDate = f.date("CreationDate")
	fd.UpdatedDate = f.date("UpdatedDate")
	fd.Source = f.text("Source")
	fd.TotalRecords = total
	fd.ProcessedRecords = processed
	fd.FailedRecords = failed

	if fd.Errors, err = collect(children(e.SelectElement("FeedErrors"), "Error"), parseFeedError); err != nil {
		return nil, err
	}
	if fd.Warnings, err = collect(children(e.SelectElement("FeedWarnings"), "Warning"), parseFeedWarning); err != nil {
		return nil, err
	}
	if reports := e.SelectElement("FailureReports"); reports != nil {
		if fd.FailureReports, err = parseFailureReports(reports); err != nil {
			return nil, err
		}
	}
	return fd, nil
}

func parseFeedError(e *etree.Element) (feed.Error, error) {
	if err := ValidateStructure(e, "FeedError", "Code", "Message", "SellerSku"); err != nil {
		return feed.Error{}, err
	}
	f := newFields(e, "FeedError")
	code := f.integer("Code")
	if f.err != nil {
		return feed.Error{}, f.err
	}
	return feed.Error{Code: code, Message: f.text("Message"), SellerSku: f.text("SellerSku")}, nil
}

func parseFeedWarning(e *etree.Element) (feed.Warning, error) {
	if err := ValidateStructure(e, "FeedWarning", "Message", "SellerSku"); err != nil {
		return feed.Warning{}, err
	}
	f := newFields(e, "FeedWarning")
	return feed.Warning{Message: f.text("Message"), SellerSku: f.text("SellerSku")}, nil
}

func parseFailureReports(e *etree.Element) (*feed.FailureReports, error) {
	if err := ValidateStructure(e, "FailureReports", "MimeType", "File"); err != nil {
		return nil, err
	}
	f := newFields(e, "FailureReports")
	return &feed.FailureReports{MimeType: f.text("MimeType"), File: f.text("File")}, nil
}

// ParseFeeds builds every <Feed> child of e
func ParseFeeds(e *etree.Element) (*feed.Feeds, error) {
	items, err := collect(children(e, "Feed"), ParseFeed)
	if err != nil {
		return nil, err
	}
	feeds := feed.NewFeeds()
	for _, fd := range items {
		feeds.Add(fd)
	}
	return feeds, nil
}

// ParseFeedCount builds the counters of a <FeedCount> element. Every
// counter is required.
func ParseFeedCount(e *etree.Element) (feed.Count, error) {
	if err := ValidateStructure(e, "FeedCount", "Total", "Queued", "Processing", "Finished", "Canceled"); err != nil {
		return feed.Count{}, err
	}
	f := newFields(e, "FeedCount")
	count := feed.Count{
		Total:      f.integer("Total"),
		Queued:     f.integer("Queued"),
		Processing: f.integer("Processing"),
		Finished:   f.integer("Finished"),
		Canceled:   f.integer("Canceled"),
	}
	if f.err != nil {
		return feed.Count{}, f.err
	}
	return count, nil
}

// ParseFeedPage builds a FeedOffsetList body
func ParseFeedPage(body *etree.Element) (*feed.Page, error) {
	if err := ValidateStructure(body, "FeedOffsetList", "FeedCount", "Feeds"); err != nil {
		return nil, err
	}
	count, err := ParseFeedCount(body.SelectElement("FeedCount"))
	if err != nil {
		return nil, err
	}
	feeds, err := ParseFeeds(body.SelectElement("Feeds"))
	if err != nil {
		return nil, err
	}
	return &feed.Page{Count: count, Feeds: feeds}, nil
}
