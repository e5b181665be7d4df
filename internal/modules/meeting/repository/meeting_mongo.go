package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/tracer"
)

const meetingResource = "meeting"

// projection for read result, digest never leave the store
var withoutDigest = bson.M{"password": 0, "participants.password": 0}

type meetingRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewMeetingRepoMongo mongo repo constructor
func NewMeetingRepoMongo(readDB, writeDB *mongo.Database) MeetingRepository {
	return &meetingRepoMongo{
		readDB, writeDB, "meetings",
	}
}

func (r *meetingRepoMongo) Create(ctx context.Context, data *domain.Meeting) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:Create")
	defer func() { trace.SetError(err); trace.Finish() }()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	if data.Participants == nil {
		data.Participants = []domain.Participant{}
	}
	for i := range data.DateOptions {
		if data.DateOptions[i].Votes == nil {
			data.DateOptions[i].Votes = []primitive.ObjectID{}
		}
	}
	data.CreatedAt = time.Now().UTC()
	trace.SetTag("meeting_id", data.ID.Hex())

	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	return
}

func (r *meetingRepoMongo) Find(ctx context.Context, id primitive.ObjectID) (data domain.Meeting, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:Find")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.findOne(ctx, trace, r.readDB.Collection(r.collection), id)
}

func (r *meetingRepoMongo) FindPrimary(ctx context.Context, id primitive.ObjectID) (data domain.Meeting, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:FindPrimary")
	defer func() { trace.SetError(err); trace.Finish() }()

	coll := r.writeDB.Collection(r.collection, options.Collection().SetReadPreference(readpref.Primary()))
	return r.findOne(ctx, trace, coll, id)
}

func (r *meetingRepoMongo) findOne(ctx context.Context, trace tracer.Tracer, coll *mongo.Collection, id primitive.ObjectID) (data domain.Meeting, err error) {
	bsonWhere := bson.M{"_id": id}
	trace.SetTag("query", bsonWhere)

	err = coll.FindOne(ctx, bsonWhere).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = candishared.NewNotFoundError(meetingResource)
	}
	return
}

func (r *meetingRepoMongo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields domain.UpdateMeetingFields) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:UpdateFields")
	defer func() { trace.SetError(err); trace.Finish() }()

	set := bson.M{}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Deadline != nil {
		set["deadline"] = *fields.Deadline
	}
	trace.SetTag("set", set)

	if len(set) == 0 {
		if r.exists(ctx, id) {
			return nil
		}
		return candishared.NewNotFoundError(meetingResource)
	}

	res, err := r.writeDB.Collection(r.collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return candishared.NewNotFoundError(meetingResource)
	}
	return nil
}

func (r *meetingRepoMongo) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	res, err := r.writeDB.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return candishared.NewNotFoundError(meetingResource)
	}
	return nil
}

func (r *meetingRepoMongo) FetchAll(ctx context.Context, filter *domain.FilterMeeting) (data []domain.Meeting, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.searchQuery(filter)
	trace.SetTag("query", where)

	filter.CalculateOffset()
	findOptions := options.Find().
		SetProjection(withoutDigest).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(filter.Limit)).
		SetSkip(int64(filter.Offset))

	cur, err := r.readDB.Collection(r.collection).Find(ctx, where, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	data = []domain.Meeting{}
	err = cur.All(ctx, &data)
	return
}

func (r *meetingRepoMongo) Count(ctx context.Context, filter *domain.FilterMeeting) int {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:Count")
	defer trace.Finish()

	count, err := r.readDB.Collection(r.collection).CountDocuments(ctx, r.searchQuery(filter))
	trace.SetError(err)
	return int(count)
}

func (r *meetingRepoMongo) InsertParticipant(ctx context.Context, meetingID primitive.ObjectID, participant domain.Participant) (inserted bool, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:InsertParticipant")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"_id": meetingID, "participants.nickname": bson.M{"$ne": participant.Nickname}}
	trace.SetTag("query", where)

	res, err := r.writeDB.Collection(r.collection).UpdateOne(ctx, where,
		bson.M{"$push": bson.M{"participants": participant}},
	)
	if err != nil {
		return false, err
	}
	trace.SetTag("matched_count", res.MatchedCount)
	return res.MatchedCount > 0, nil
}

func (r *meetingRepoMongo) PullVotes(ctx context.Context, meetingID, participantID primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:PullVotes")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = r.writeDB.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": meetingID},
		bson.M{"$pull": bson.M{"dateOptions.$[].votes": participantID}},
	)
	return
}

func (r *meetingRepoMongo) AddVotes(ctx context.Context, meetingID, participantID primitive.ObjectID, dateOptionIDs []primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingRepoMongo:AddVotes")
	defer func() { trace.SetError(err); trace.Finish() }()

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem._id": bson.M{"$in": dateOptionIDs}}},
	})
	// document must own at least one target, unknown ids alone are not found
	res, err := r.writeDB.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": meetingID, "dateOptions._id": bson.M{"$in": dateOptionIDs}},
		bson.M{"$addToSet": bson.M{"dateOptions.$[elem].votes": participantID}},
		opts,
	)
	if err != nil {
		return err
	}
	trace.SetTag("matched_count", res.MatchedCount)
	trace.SetTag("modified_count", res.ModifiedCount)
	if res.MatchedCount == 0 {
		if r.exists(ctx, meetingID) {
			return candishared.NewNotFoundError("date option")
		}
		return candishared.NewNotFoundError(meetingResource)
	}
	return nil
}

func (r *meetingRepoMongo) exists(ctx context.Context, id primitive.ObjectID) bool {
	count, _ := r.readDB.Collection(r.collection).CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return count > 0
}

func (r *meetingRepoMongo) searchQuery(filter *domain.FilterMeeting) bson.M {
	return bson.M{
		"title": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Title), Options: "i"},
	}
}
