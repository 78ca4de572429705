package test

import (
	"go.uber.org/mock/gomock"

	"federblog/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().TotalFollowers(gomock.Any()).AnyTimes()
}

func stubRequestObservers(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartApubRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartApubRequestOut(gomock.Any()).Return(obs).AnyTimes()
}
