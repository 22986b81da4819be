package oai

import (
	"context"
	"fmt"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// FineTuningService talks to the fine-tuning job endpoints.
type FineTuningService struct {
	client *Client
}

// FineTuning returns the fine-tuning service.
func (c *Client) FineTuning() FineTuningService {
	return FineTuningService{client: c}
}

// FineTuningJobRequest carries the parameters for creating a fine-tuning
// job. Model and training file ID are mandatory.
type FineTuningJobRequest struct {
	model                        string
	trainingFile                 string
	validationFile               param.Opt[string]
	nEpochs                      param.Opt[int64]
	batchSize                    param.Opt[int64]
	learningRateMultiplier       param.Opt[float64]
	promptLossWeight             param.Opt[float64]
	computeClassificationMetrics param.Opt[bool]
	classificationNClasses       param.Opt[int64]
	classificationPositiveClass  param.Opt[string]
	classificationBetas          param.Opt[[]float64]
}

// NewFineTuningJob starts a fine-tuning job request.
func NewFineTuningJob(model, trainingFile string) FineTuningJobRequest {
	return FineTuningJobRequest{model: model, trainingFile: trainingFile}
}

// WithValidationFile sets the validation data file ID.
func (r FineTuningJobRequest) WithValidationFile(fileID string) FineTuningJobRequest {
	r.validationFile = param.Some(fileID)
	return r
}

// WithNEpochs sets the number of training epochs.
func (r FineTuningJobRequest) WithNEpochs(n int64) FineTuningJobRequest {
	r.nEpochs = param.Some(n)
	return r
}

// WithBatchSize sets the training batch size.
func (r FineTuningJobRequest) WithBatchSize(n int64) FineTuningJobRequest {
	r.batchSize = param.Some(n)
	return r
}

// WithLearningRateMultiplier scales the base learning rate.
func (r FineTuningJobRequest) WithLearningRateMultiplier(m float64) FineTuningJobRequest {
	r.learningRateMultiplier = param.Some(m)
	return r
}

// WithPromptLossWeight sets the weight of the prompt loss.
func (r FineTuningJobRequest) WithPromptLossWeight(w float64) FineTuningJobRequest {
	r.promptLossWeight = param.Some(w)
	return r
}

// WithComputeClassificationMetrics enables classification metrics on the
// validation set.
func (r FineTuningJobRequest) WithComputeClassificationMetrics(compute bool) FineTuningJobRequest {
	r.computeClassificationMetrics = param.Some(compute)
	return r
}

// WithClassificationNClasses sets the number of classes.
func (r FineTuningJobRequest) WithClassificationNClasses(n int64) FineTuningJobRequest {
	r.classificationNClasses = param.Some(n)
	return r
}

// WithClassificationPositiveClass sets the positive class for binary
// metrics.
func (r FineTuningJobRequest) WithClassificationPositiveClass(class string) FineTuningJobRequest {
	r.classificationPositiveClass = param.Some(class)
	return r
}

// WithClassificationBetas sets the beta values for F-beta scores.
func (r FineTuningJobRequest) WithClassificationBetas(betas []float64) FineTuningJobRequest {
	r.classificationBetas = param.Some(betas)
	return r
}

func (r FineTuningJobRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().
		Set("model", r.model).
		Set("training_file", r.trainingFile)
	param.SetOpt(obj, "validation_file", r.validationFile)
	param.SetOpt(obj, "n_epochs", r.nEpochs)
	param.SetOpt(obj, "batch_size", r.batchSize)
	param.SetOpt(obj, "learning_rate_multiplier", r.learningRateMultiplier)
	param.SetOpt(obj, "prompt_loss_weight", r.promptLossWeight)
	param.SetOpt(obj, "compute_classification_metrics", r.computeClassificationMetrics)
	param.SetOpt(obj, "classification_n_classes", r.classificationNClasses)
	param.SetOpt(obj, "classification_positive_class", r.classificationPositiveClass)
	param.SetOpt(obj, "classification_betas", r.classificationBetas)
	return obj.MarshalJSON()
}

// CreateJob starts a fine-tuning job.
func (s FineTuningService) CreateJob(ctx context.Context, req FineTuningJobRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/fine-tuning/jobs", req)
}

// ListJobs lists the organization's fine-tuning jobs.
func (s FineTuningService) ListJobs(ctx context.Context) (gjson.Result, error) {
	return s.client.Get(ctx, "/fine-tuning/jobs")
}

// RetrieveJob fetches a fine-tuning job by ID.
func (s FineTuningService) RetrieveJob(ctx context.Context, jobID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/fine-tuning/jobs/%s", jobID))
}
